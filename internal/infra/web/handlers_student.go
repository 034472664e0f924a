package web

import (
	"mime/multipart"
	"net/http"

	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/usecase"
)

// 10 MB per request; Cloudinary enforces its own per-file cap.
const maxUploadBytes = 10 << 20

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	profile, err := s.studentUC.Profile(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type profileUpdateRequest struct {
	FullName string `json:"full_name"`
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	var req profileUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := s.studentUC.UpdateProfile(r.Context(), user.ID, req.FullName)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleStudentHistory(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	history, err := s.studentUC.QuizHistory(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []*model.AttemptHistoryEntry `json:"data"`
	}{Data: history})
}

func (s *Server) handleAvatarUpload(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, r, s.log, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, r, s.log, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	img, err := s.studentUC.UploadAvatar(r.Context(), user.ID, file, header.Filename)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

func (s *Server) handleImageUpload(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, r, s.log, http.StatusBadRequest, "invalid multipart body")
		return
	}
	form := r.MultipartForm
	files := form.File["images"]
	if len(files) == 0 {
		writeError(w, r, s.log, http.StatusBadRequest, "at least one image is required")
		return
	}

	uploads := make([]usecase.ImageUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			writeError(w, r, s.log, http.StatusBadRequest, "unreadable upload")
			return
		}
		opened = append(opened, f)
		uploads = append(uploads, usecase.ImageUpload{
			Reader:       f,
			OriginalName: header.Filename,
			Type:         model.ImageTypeGallery,
			Description:  r.FormValue("description"),
		})
	}

	images, err := s.studentUC.UploadImages(r.Context(), user.ID, uploads)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Data []*model.UserImage `json:"data"`
	}{Data: images})
}

func (s *Server) handleImageList(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	images, err := s.studentUC.Images(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data []*model.UserImage `json:"data"`
	}{Data: images})
}

type imageDeleteRequest struct {
	IDs []string `json:"ids"`
}

func (s *Server) handleImageDelete(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	var req imageDeleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	deleted, err := s.studentUC.DeleteImages(r.Context(), user.ID, req.IDs)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Deleted int `json:"deleted"`
	}{Deleted: deleted})
}
