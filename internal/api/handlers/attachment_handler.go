package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"github.com/linskybing/tracker-go/pkg/response"
)

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// UploadAttachment godoc
// @Summary Attach a file to a ticket
// @Tags attachments
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Ticket ID"
// @Param file formData file true "File"
// @Success 201 {object} ticket.Attachment
// @Failure 400 {object} response.ErrorResponse "No file"
// @Failure 422 {object} response.ErrorResponse "File too large or empty"
// @Failure 503 {object} response.ErrorResponse "Storage not configured"
// @Router /api/tickets/{id}/attachments [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, application.MaxAttachmentSize+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required: " + err.Error(), Kind: "bad_request"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read file", Kind: "bad_request"})
		return
	}
	defer f.Close()

	a, err := h.svc.AddAttachment(c, u, id, application.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAttachments godoc
// @Summary List a ticket's attachments
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Ticket ID"
// @Success 200 {array} ticket.Attachment
// @Router /api/tickets/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListAttachments(u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []ticket.Attachment{}
	}
	c.JSON(http.StatusOK, list)
}

// GetAttachmentURL godoc
// @Summary Presigned download link for an attachment
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Attachment ID"
// @Success 200 {object} response.URLResponse
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Failure 503 {object} response.ErrorResponse "Storage not configured"
// @Router /api/attachments/{id} [get]
func (h *AttachmentHandler) GetAttachmentURL(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	url, err := h.svc.DownloadURL(c, u, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.URLResponse{URL: url})
}

// DeleteAttachment godoc
// @Summary Delete an attachment
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Attachment ID"
// @Success 200 {object} response.MessageResponse
// @Router /api/attachments/{id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteAttachment(c, u, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Attachment deleted"})
}
