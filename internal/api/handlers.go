package api

import (
	"encoding/json"
	"net/http"
	"time"

	"depths-of-the-abyss/internal/sim"
	"depths-of-the-abyss/internal/simerr"
	"depths-of-the-abyss/internal/telemetry"
)

// Handler methods for routerHandlers. Used by both the standalone
// router (for testing) and the full Server.

func (h *routerHandlers) handleStartRun(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seed       uint64 `json:"seed"`
		Difficulty string `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "normal"
	}

	e, err := h.rt.Start(req.Seed, req.Difficulty)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	sc := e.Scene()
	writeJSON(w, map[string]interface{}{
		"seed":       req.Seed,
		"difficulty": req.Difficulty,
		"scene":      sc,
	})
}

func (h *routerHandlers) handleTick(w http.ResponseWriter, r *http.Request) {
	e := h.rt.Engine()
	if e == nil {
		writeError(w, "no active run; POST /run first", http.StatusConflict)
		return
	}

	var req struct {
		Input sim.InputSnapshot `json:"input"`
		DtSec float64           `json:"dtSec"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	start := time.Now()
	e.Tick(req.Input, req.DtSec)
	telemetry.RecordTick(time.Since(start))

	writeJSON(w, map[string]interface{}{
		"scene":  e.Scene(),
		"events": e.DrainEvents(),
	})
}

func (h *routerHandlers) handleScene(w http.ResponseWriter, r *http.Request) {
	e := h.rt.Engine()
	if e == nil {
		writeError(w, "no active run; POST /run first", http.StatusConflict)
		return
	}
	writeJSON(w, e.Scene())
}

func (h *routerHandlers) handleEvents(w http.ResponseWriter, r *http.Request) {
	e := h.rt.Engine()
	if e == nil {
		writeError(w, "no active run; POST /run first", http.StatusConflict)
		return
	}
	writeJSON(w, e.DrainEvents())
}

func (h *routerHandlers) handleDescend(w http.ResponseWriter, r *http.Request) {
	e := h.rt.Engine()
	if e == nil {
		writeError(w, "no active run; POST /run first", http.StatusConflict)
		return
	}
	e.DescendStairs()
	writeJSON(w, e.Scene())
}

func (h *routerHandlers) handleCheckpoint(w http.ResponseWriter, r *http.Request) {
	e := h.rt.Engine()
	if e == nil {
		writeError(w, "no active run; POST /run first", http.StatusConflict)
		return
	}
	e.SaveCheckpoint()
	telemetry.RecordSaveOp("checkpoint", "ok")
	writeJSON(w, map[string]bool{"success": true})
}

func (h *routerHandlers) handleSaveFull(w http.ResponseWriter, r *http.Request) {
	e := h.rt.Engine()
	if e == nil {
		writeError(w, "no active run; POST /run first", http.StatusConflict)
		return
	}
	blob, err := e.SaveFull()
	if err != nil {
		telemetry.RecordSaveOp("full", "error")
		writeEngineError(w, err)
		return
	}
	telemetry.RecordSaveOp("full", "ok")
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(blob)
}

func (h *routerHandlers) handleLoad(w http.ResponseWriter, r *http.Request) {
	e := h.rt.Engine()
	if e == nil {
		writeError(w, "no active run; POST /run first", http.StatusConflict)
		return
	}

	var req struct {
		Blob []byte `json:"blob"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := e.Load(req.Blob); err != nil {
		telemetry.RecordSaveOp("load", "error")
		writeEngineError(w, err)
		return
	}
	telemetry.RecordSaveOp("load", "ok")
	writeJSON(w, e.Scene())
}

func (h *routerHandlers) handleRollback(w http.ResponseWriter, r *http.Request) {
	e := h.rt.Engine()
	if e == nil {
		writeError(w, "no active run; POST /run first", http.StatusConflict)
		return
	}
	if err := e.RollbackCheckpoint(); err != nil {
		telemetry.RecordSaveOp("rollback", "error")
		writeEngineError(w, err)
		return
	}
	telemetry.RecordSaveOp("rollback", "ok")
	writeJSON(w, e.Scene())
}

// Helper functions (package-level for reuse).

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeEngineError maps a simerr.Kind to an HTTP status the same way
// the core itself distinguishes failure categories (spec §7), rather
// than collapsing every engine error to 500.
func writeEngineError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if se, ok := err.(*simerr.Error); ok {
		switch se.Kind {
		case simerr.BadData:
			code = http.StatusBadRequest
		case simerr.InvariantBroken:
			code = http.StatusConflict
		case simerr.SaveIo:
			code = http.StatusInternalServerError
		}
	}
	writeError(w, err.Error(), code)
}
