// Package script loads YAML operation scripts and replays them against a
// task manager. A script is a list of single-action steps:
//
//	steps:
//	  - add: {pid: "1", priority: LOW}
//	  - kill: "1"
//	  - killGroup: MEDIUM
//	  - killAll: true
//	  - list: PID
//
// List steps print the tracked processes as a table.
package script
