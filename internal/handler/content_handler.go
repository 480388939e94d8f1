package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tmohagan/portfolio-api/internal/middleware"
	"github.com/tmohagan/portfolio-api/internal/service"
)

type ContentForm struct {
	Title   string `validate:"required"`
	Summary string
	Content string
}

// Posts and projects share one set of handlers; the exported methods only
// select which service the request is routed to.

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	h.createContent(w, r, h.PostService)
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	h.createContent(w, r, h.ProjectService)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	h.updateContent(w, r, h.PostService)
}

func (h *Handlers) UpdateProject(w http.ResponseWriter, r *http.Request) {
	h.updateContent(w, r, h.ProjectService)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	h.listContent(w, r, h.PostService)
}

func (h *Handlers) GetProjects(w http.ResponseWriter, r *http.Request) {
	h.listContent(w, r, h.ProjectService)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	h.getContent(w, r, h.PostService)
}

func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	h.getContent(w, r, h.ProjectService)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	h.deleteContent(w, r, h.PostService)
}

func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	h.deleteContent(w, r, h.ProjectService)
}

func (h *Handlers) createContent(w http.ResponseWriter, r *http.Request, svc service.ContentService) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	fields, upload, ok := h.parseContentForm(w, r)
	if !ok {
		return
	}
	if upload != nil {
		defer upload.close()
	}

	item, err := svc.Create(r.Context(), claims.UserID, fields, upload.toService())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, item, http.StatusOK)
}

func (h *Handlers) updateContent(w http.ResponseWriter, r *http.Request, svc service.ContentService) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	fields, upload, ok := h.parseContentForm(w, r)
	if !ok {
		return
	}
	if upload != nil {
		defer upload.close()
	}

	itemID := r.FormValue("id")
	if itemID == "" {
		writeError(w, "missing item id", http.StatusBadRequest)
		return
	}

	item, err := svc.Update(r.Context(), itemID, claims, fields, upload.toService())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, item, http.StatusOK)
}

func (h *Handlers) listContent(w http.ResponseWriter, r *http.Request, svc service.ContentService) {
	items, err := svc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, items, http.StatusOK)
}

func (h *Handlers) getContent(w http.ResponseWriter, r *http.Request, svc service.ContentService) {
	itemID := mux.Vars(r)["id"]

	item, err := svc.Get(r.Context(), itemID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, item, http.StatusOK)
}

func (h *Handlers) deleteContent(w http.ResponseWriter, r *http.Request, svc service.ContentService) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	itemID := mux.Vars(r)["id"]

	if err := svc.Delete(r.Context(), itemID, claims); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// formUpload keeps the multipart file handle alive until the handler is done
// with the service call.
type formUpload struct {
	fileName string
	file     multipart.File
	size     int64
}

func (u *formUpload) close() {
	u.file.Close()
}

func (u *formUpload) toService() *service.Upload {
	if u == nil {
		return nil
	}
	return &service.Upload{
		FileName: u.fileName,
		File:     u.file,
		Size:     u.size,
	}
}

// parseContentForm reads the multipart body shared by create and update:
// title/summary/content fields plus an optional cover under "file". It writes
// the error response itself and returns ok=false when the request is bad.
func (h *Handlers) parseContentForm(w http.ResponseWriter, r *http.Request) (service.ContentFields, *formUpload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeError(w, "could not parse multipart form", http.StatusBadRequest)
		return service.ContentFields{}, nil, false
	}

	fields := service.ContentFields{
		Title:   r.FormValue("title"),
		Summary: r.FormValue("summary"),
		Content: r.FormValue("content"),
	}

	form := ContentForm{Title: fields.Title, Summary: fields.Summary, Content: fields.Content}
	if err := h.Validate.Struct(form); err != nil {
		writeError(w, "title is required", http.StatusBadRequest)
		return service.ContentFields{}, nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return fields, nil, true
		}
		writeError(w, "could not read uploaded file", http.StatusBadRequest)
		return service.ContentFields{}, nil, false
	}

	return fields, &formUpload{fileName: header.Filename, file: file, size: header.Size}, true
}
