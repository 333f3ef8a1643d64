package http

import (
	"errors"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordlist/internal/database"
)

// AdminController exposes maintenance operations.
type AdminController struct {
	resetter  Resetter
	snapshots SnapshotStore
}

// NewAdminController creates an AdminController. Either dependency may be nil;
// the router only registers the routes it can serve.
func NewAdminController(resetter Resetter, snapshots SnapshotStore) *AdminController {
	return &AdminController{resetter: resetter, snapshots: snapshots}
}

// Reset handles POST /api/admin/reset
// Drops every word and restores the seed list at the current schema version.
func (ac *AdminController) Reset(c *gin.Context) {
	if err := ac.resetter.Reset(); err != nil {
		respondInternalError(c, err, "reset word list")
		return
	}
	respondSuccess(c, "word list reset")
}

// ListSnapshots handles GET /api/admin/snapshots
func (ac *AdminController) ListSnapshots(c *gin.Context) {
	names, err := ac.snapshots.List()
	if err != nil {
		respondInternalError(c, err, "list snapshots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": names, "total": len(names)})
}

// GetSnapshot handles GET /api/admin/snapshots/:name
func (ac *AdminController) GetSnapshot(c *gin.Context) {
	name := c.Param("name")
	if name == "" || filepath.Base(name) != name || filepath.Ext(name) != ".json" {
		respondBadRequest(c, "invalid snapshot name")
		return
	}

	var snapshot database.DroppedRows
	if err := ac.snapshots.Load(name, &snapshot); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			respondNotFound(c, "snapshot")
			return
		}
		respondInternalError(c, err, "load snapshot")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
