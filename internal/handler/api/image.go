package api

import (
	"minibook/internal/handler/httperr"
	"minibook/internal/infra/images"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	store *images.Store
}

func NewImageHandler(store *images.Store) *ImageHandler {
	return &ImageHandler{store: store}
}

// GetImage serves a stored cover by its resource id. Anything that does not
// resolve to a stored file, including malformed ids, is a plain not-found.
func (h *ImageHandler) GetImage(c *gin.Context) {
	path, err := h.store.Path(c.Param("res"))
	if err != nil {
		httperr.Abort(c, httperr.ImageNotFound, err)
		return
	}
	c.File(path)
}
