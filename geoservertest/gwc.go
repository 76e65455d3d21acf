// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoservertest

import (
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ugorji/go/codec"

	"github.com/diffeo/go-geoserver/decoder"
	"github.com/diffeo/go-geoserver/geoserver"
)

// seedTask is one GeoWebCache task in progress.
type seedTask struct {
	id        int64
	processed int64
	total     int64
	status    geoserver.SeedTaskStatus
}

// advance moves a task one step along.
func (t *seedTask) advance(step int64) {
	switch t.status {
	case geoserver.SeedPending:
		t.status = geoserver.SeedRunning
	case geoserver.SeedRunning:
		t.processed += step
		if t.processed >= t.total {
			t.processed = t.total
			t.status = geoserver.SeedDone
		}
	}
}

func (t *seedTask) report(step int64) geoserver.SeedTask {
	remaining := int64(0)
	if step > 0 {
		remaining = (t.total - t.processed) / step
	}
	return geoserver.SeedTask{
		TilesProcessed:   t.processed,
		TotalTiles:       t.total,
		RemainingSeconds: remaining,
		TaskID:           t.id,
		Status:           t.status,
	}
}

// seedStatus is the JSON status document.
type seedStatus struct {
	Tasks [][]int64 `codec:"long-array-array"`
}

func (s *Server) populateGWC(r *mux.Router) {
	r.Path("/seed.json").Methods("GET").Handler(s.handle(s.getSeedStatus))
	r.Path("/seed").Methods("POST").Handler(s.handle(s.postKill))
	r.Path("/seed/{layer}.xml").Methods("POST").Handler(s.handle(s.postSeed))
	r.Path("/seed/{layer}.json").Methods("GET").Handler(s.handle(s.getSeedStatus))
	r.Path("/seed/{layer}").Methods("POST").Handler(s.handle(s.postKill))
}

func (s *Server) checkLayer(name string) error {
	if s.catalog.lookup(layerKind.path).get(name) == nil {
		return geoserver.ErrNoSuchResource{Kind: "layer", Name: name}
	}
	return nil
}

// postSeed queues one task per requested thread.
func (s *Server) postSeed(req *http.Request, vars map[string]string) (*response, error) {
	layer := vars["layer"]
	if err := s.checkLayer(layer); err != nil {
		return nil, err
	}
	body, err := ioutil.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	request := decoder.BuildSeedRequest(string(body))
	if request == nil || request.Node().Tag() != "seedRequest" {
		return nil, errBadRequest{Text: "expected a <seedRequest> document"}
	}
	for i := 0; i < request.ThreadCount(); i++ {
		s.nextTask++
		s.seeds[layer] = append(s.seeds[layer], &seedTask{
			id:     s.nextTask,
			total:  s.SeedTiles,
			status: geoserver.SeedPending,
		})
	}
	return ok(), nil
}

// getSeedStatus advances and reports the tasks of one layer, or of
// all layers.  Finished tasks are reported once and then forgotten.
func (s *Server) getSeedStatus(req *http.Request, vars map[string]string) (*response, error) {
	layers := []string{}
	if layer, one := vars["layer"]; one {
		if err := s.checkLayer(layer); err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	} else {
		layers = s.catalog.lookup(layerKind.path).names()
	}

	status := seedStatus{Tasks: [][]int64{}}
	for _, layer := range layers {
		var remaining []*seedTask
		for _, task := range s.seeds[layer] {
			task.advance(s.SeedStep)
			status.Tasks = append(status.Tasks, task.report(s.SeedStep).Values())
			if task.status != geoserver.SeedDone {
				remaining = append(remaining, task)
			}
		}
		if len(remaining) == 0 {
			delete(s.seeds, layer)
		} else {
			s.seeds[layer] = remaining
		}
	}

	var body []byte
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoderBytes(&body, json)
	if err := encoder.Encode(status); err != nil {
		return nil, err
	}
	return &response{status: http.StatusOK, contentType: "application/json", body: string(body)}, nil
}

// postKill terminates the selected tasks of one layer, or of all
// layers.
func (s *Server) postKill(req *http.Request, vars map[string]string) (*response, error) {
	if err := req.ParseForm(); err != nil {
		return nil, errBadRequest{Text: err.Error()}
	}
	var kill func(*seedTask) bool
	switch geoserver.SeedKillType(req.PostForm.Get("kill_all")) {
	case geoserver.KillRunning:
		kill = func(t *seedTask) bool { return t.status == geoserver.SeedRunning }
	case geoserver.KillPending:
		kill = func(t *seedTask) bool { return t.status == geoserver.SeedPending }
	case geoserver.KillAll:
		kill = func(t *seedTask) bool { return true }
	default:
		return nil, errBadRequest{Text: "kill_all must be running, pending, or all"}
	}

	layers := []string{}
	if layer, one := vars["layer"]; one {
		if err := s.checkLayer(layer); err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	} else {
		for layer := range s.seeds {
			layers = append(layers, layer)
		}
	}
	for _, layer := range layers {
		var remaining []*seedTask
		for _, task := range s.seeds[layer] {
			if !kill(task) {
				remaining = append(remaining, task)
			}
		}
		if len(remaining) == 0 {
			delete(s.seeds, layer)
		} else {
			s.seeds[layer] = remaining
		}
	}
	return ok(), nil
}
