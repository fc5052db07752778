package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/urfave/cli"
	"github.com/viant/afs"
	"github.com/viant/tasker"
	"github.com/viant/tasker/model"
	"github.com/viant/tasker/script"
	"github.com/viant/tasker/service/event"
	"github.com/viant/tasker/service/messaging/memory"
)

const (
	configFlagName   = "config"
	scriptFlagName   = "script"
	modeFlagName     = "mode"
	capacityFlagName = "capacity"
	eventsFlagName   = "events"
)

func configFlag() cli.StringFlag {
	return cli.StringFlag{
		Name:  configFlagName + ", c",
		Usage: "config location (local path or afs URL)",
	}
}

// Run replays a script against a freshly configured task manager
func Run() cli.Command {
	return cli.Command{
		Name:  "run",
		Usage: "replays a YAML script of add/kill/list steps",
		Flags: []cli.Flag{
			configFlag(),
			cli.StringFlag{
				Name:  scriptFlagName + ", s",
				Usage: "script location (local path or afs URL)",
			},
			cli.StringFlag{
				Name:  modeFlagName + ", m",
				Usage: "admission mode overriding config: DEFAULT|FIFO|PRIORITY",
			},
			cli.IntFlag{
				Name:  capacityFlagName,
				Usage: "capacity overriding config",
			},
			cli.BoolFlag{
				Name:  eventsFlagName,
				Usage: "print lifecycle events after the run",
			},
		},
		Action: func(c *cli.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if c.String(scriptFlagName) == "" {
				return fmt.Errorf("--%v is required", scriptFlagName)
			}
			cfg, err := loadConfig(ctx, c.String(configFlagName))
			if err != nil {
				return err
			}
			if c.IsSet(modeFlagName) {
				if cfg.Mode, err = model.ParseMode(c.String(modeFlagName)); err != nil {
					return err
				}
			}
			if c.IsSet(capacityFlagName) {
				cfg.Capacity = c.Int(capacityFlagName)
			}

			var options []tasker.Option
			var queue *memory.Queue[event.Event]
			if c.Bool(eventsFlagName) || cfg.Events.Enabled {
				buffer := cfg.Events.Buffer
				if buffer <= 0 {
					buffer = memory.DefaultConfig().Buffer
				}
				queue = memory.NewQueue[event.Event](memory.Config{Buffer: buffer, Blocking: true})
				options = append(options, tasker.WithEventQueue(queue))
			}
			srv, err := tasker.NewFromConfig(cfg, options...)
			if err != nil {
				return err
			}
			aScript, err := script.Load(ctx, afs.New(), c.String(scriptFlagName))
			if err != nil {
				return err
			}
			w := c.App.Writer
			fmt.Fprintf(w, "%v manager, capacity %d, %d steps\n", cfg.Mode, cfg.Capacity, len(aScript.Steps))

			var events *eventLog
			var listener *event.Listener
			if queue != nil {
				events = &eventLog{}
				listener = event.NewListener(srv.Events(), events.add)
				listener.Start(ctx)
				defer listener.Stop()
			}
			if err = script.Run(ctx, srv.Manager(), aScript, w); err != nil {
				return err
			}
			if listener != nil {
				listener.Stop()
				for _, e := range queue.Drain() {
					events.add(&e)
				}
				events.print(w)
			}
			return nil
		},
	}
}

// Validate checks a config file
func Validate() cli.Command {
	return cli.Command{
		Name:  "validate",
		Usage: "validates a config file",
		Flags: []cli.Flag{configFlag()},
		Action: func(c *cli.Context) error {
			location := c.String(configFlagName)
			if location == "" {
				return fmt.Errorf("--%v is required", configFlagName)
			}
			cfg, err := tasker.LoadConfig(context.Background(), location)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%v is valid: %v manager, capacity %d\n", location, cfg.Mode, cfg.Capacity)
			return nil
		},
	}
}

func loadConfig(ctx context.Context, location string) (*tasker.Config, error) {
	if location == "" {
		return tasker.DefaultConfig(), nil
	}
	return tasker.LoadConfig(ctx, location)
}

// eventLog collects events handed over by the listener goroutine
type eventLog struct {
	mux   sync.Mutex
	lines []string
}

func (l *eventLog) add(e *event.Event) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.lines = append(l.lines, formatEvent(e))
}

func (l *eventLog) print(w io.Writer) {
	l.mux.Lock()
	defer l.mux.Unlock()
	for _, line := range l.lines {
		fmt.Fprintln(w, line)
	}
}

func formatEvent(e *event.Event) string {
	ret := fmt.Sprintf("event %v %v", e.Type, e.Process)
	if e.Victim != nil {
		ret += " victim " + e.Victim.String()
	}
	if e.Reason != "" {
		ret += " (" + e.Reason + ")"
	}
	return ret
}
