// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoserver

// SeedTaskStatus is the state of a GeoWebCache seeding task.
type SeedTaskStatus int

const (
	// SeedNotFound is the status of a task GeoWebCache does not
	// know about, and of any status code that is not recognized.
	SeedNotFound SeedTaskStatus = iota

	// SeedAborted tasks were terminated before finishing.
	SeedAborted

	// SeedPending tasks are queued but have not started.
	SeedPending

	// SeedRunning tasks are in progress.
	SeedRunning

	// SeedDone tasks have finished.
	SeedDone
)

// seedStatusCodes maps GeoWebCache's numeric task status codes to
// statuses.
var seedStatusCodes = map[int64]SeedTaskStatus{
	-1: SeedAborted,
	0:  SeedPending,
	1:  SeedRunning,
	2:  SeedDone,
}

// SeedTaskStatusFromCode converts a GeoWebCache status code.  Codes
// that are not defined yield SeedNotFound.
func SeedTaskStatusFromCode(code int64) SeedTaskStatus {
	if status, ok := seedStatusCodes[code]; ok {
		return status
	}
	return SeedNotFound
}

// Code returns the GeoWebCache status code for status, and false for
// SeedNotFound, which has none.
func (status SeedTaskStatus) Code() (int64, bool) {
	for code, s := range seedStatusCodes {
		if s == status {
			return code, true
		}
	}
	return 0, false
}

// SeedTask is one entry of a GeoWebCache seeding status report.
type SeedTask struct {
	// TilesProcessed is the number of tiles generated so far.
	TilesProcessed int64

	// TotalTiles is the total number of tiles the task will
	// generate.
	TotalTiles int64

	// RemainingSeconds is the estimated time to completion.
	RemainingSeconds int64

	// TaskID identifies the task within GeoWebCache.
	TaskID int64

	// Status is the task's state.
	Status SeedTaskStatus
}

// NewSeedTask decodes a status entry, which GeoWebCache reports as
// the list [tiles processed, total tiles, remaining seconds, task ID,
// status code].  Missing trailing entries are zero, and a missing
// status code yields SeedNotFound.
func NewSeedTask(values []int64) SeedTask {
	entries := make([]*int64, len(values))
	for i := range values {
		entries[i] = &values[i]
	}
	return NewSeedTaskEntries(entries)
}

// NewSeedTaskEntries decodes a status entry in which any value may be
// null.  Null counters are zero, and a null status code yields
// SeedNotFound.
func NewSeedTaskEntries(values []*int64) SeedTask {
	at := func(i int) int64 {
		if i < len(values) && values[i] != nil {
			return *values[i]
		}
		return 0
	}
	task := SeedTask{
		TilesProcessed:   at(0),
		TotalTiles:       at(1),
		RemainingSeconds: at(2),
		TaskID:           at(3),
		Status:           SeedNotFound,
	}
	if len(values) > 4 && values[4] != nil {
		task.Status = SeedTaskStatusFromCode(*values[4])
	}
	return task
}

// Values encodes task back into GeoWebCache's list form.  A
// SeedNotFound status has no code, so its list has only four entries.
func (task SeedTask) Values() []int64 {
	values := []int64{task.TilesProcessed, task.TotalTiles, task.RemainingSeconds, task.TaskID}
	if code, ok := task.Status.Code(); ok {
		values = append(values, code)
	}
	return values
}
