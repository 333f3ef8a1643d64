package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordlist/internal/entities"
)

// MaxImportBatch caps how many words a single import request may carry.
const MaxImportBatch = 1000

// WordsController serves the word list API.
type WordsController struct {
	store WordStore
	queue ImportQueue
}

// NewWordsController creates a WordsController. queue may be nil, in which case
// imports answer 503.
func NewWordsController(store WordStore, queue ImportQueue) *WordsController {
	return &WordsController{store: store, queue: queue}
}

// WordListResponse is returned by list and search endpoints.
type WordListResponse struct {
	Words []entities.WordEntry `json:"words"`
	Total int                  `json:"total"`
}

// CountResponse is returned by GET /api/words/count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// WordRequest is the body of create and update requests. Word is a pointer so
// an explicit empty string is accepted while a missing field is not.
type WordRequest struct {
	Word *string `json:"word" binding:"required"`
}

// ImportRequest is the body of POST /api/words/import.
type ImportRequest struct {
	Words []string `json:"words" binding:"required"`
}

// ImportResponse carries the id of the queued import task.
type ImportResponse struct {
	TaskID string `json:"task_id"`
	Queued int    `json:"queued"`
}

// ListWords handles GET /api/words
func (wc *WordsController) ListWords(c *gin.Context) {
	found, err := wc.store.SearchAll("")
	if err != nil {
		respondStoreError(c, err, "list words")
		return
	}
	c.JSON(http.StatusOK, WordListResponse{Words: found, Total: len(found)})
}

// Count handles GET /api/words/count
func (wc *WordsController) Count(c *gin.Context) {
	total, err := wc.store.Count()
	if err != nil {
		respondStoreError(c, err, "count words")
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: total})
}

// GetByPosition handles GET /api/words/position/:position
func (wc *WordsController) GetByPosition(c *gin.Context) {
	position, ok := parsePositionParam(c, "position")
	if !ok {
		return
	}

	entry, err := wc.store.QueryByPosition(position)
	if err != nil {
		respondStoreError(c, err, "query position")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Search handles GET /api/words/search?q=
func (wc *WordsController) Search(c *gin.Context) {
	found, err := wc.store.SearchAll(c.Query("q"))
	if err != nil {
		respondStoreError(c, err, "search words")
		return
	}
	c.JSON(http.StatusOK, WordListResponse{Words: found, Total: len(found)})
}

// AddWord handles POST /api/words
func (wc *WordsController) AddWord(c *gin.Context) {
	var req WordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "word is required")
		return
	}

	id, err := wc.store.Insert(*req.Word)
	if err != nil {
		respondStoreError(c, err, "insert word")
		return
	}
	respondCreated(c, entities.WordEntry{ID: id, Word: *req.Word})
}

// UpdateWord handles PUT /api/words/:id
func (wc *WordsController) UpdateWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req WordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "word is required")
		return
	}

	updated, err := wc.store.UpdateByID(id, *req.Word)
	if err != nil {
		respondStoreError(c, err, "update word")
		return
	}
	if updated == 0 {
		respondNotFound(c, "word")
		return
	}
	c.JSON(http.StatusOK, entities.WordEntry{ID: id, Word: *req.Word})
}

// DeleteWord handles DELETE /api/words/:id
func (wc *WordsController) DeleteWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := wc.store.DeleteByID(id)
	if err != nil {
		respondStoreError(c, err, "delete word")
		return
	}
	if deleted == 0 {
		respondNotFound(c, "word")
		return
	}
	respondSuccess(c, "word deleted")
}

// ImportWords handles POST /api/words/import
func (wc *WordsController) ImportWords(c *gin.Context) {
	if wc.queue == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is disabled")
		return
	}

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "words is required")
		return
	}
	if len(req.Words) == 0 {
		respondBadRequest(c, "words must not be empty")
		return
	}
	if len(req.Words) > MaxImportBatch {
		respondBadRequest(c, "too many words in one import")
		return
	}

	taskID, err := wc.queue.EnqueueImport(req.Words)
	if err != nil {
		respondInternalError(c, err, "enqueue import")
		return
	}
	respondAccepted(c, "import queued", ImportResponse{TaskID: taskID, Queued: len(req.Words)})
}
