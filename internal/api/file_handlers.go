package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"fabshop-api/service"

	"go.uber.org/zap"
)

// uploads are held in memory before landing in a BLOB column
const maxUploadBytes = 32 << 20

func handleFileUpload(files service.FileService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		part, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file field")
			return
		}
		defer part.Close()

		data, err := io.ReadAll(part)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read upload")
			return
		}

		var taskNo *uint
		if raw := r.FormValue("task_no"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid task_no")
				return
			}
			n := uint(parsed)
			taskNo = &n
		}

		file, err := files.Upload(service.FileUploadInput{
			ProjectNo:   r.PathValue("projectNo"),
			TaskNo:      taskNo,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusCreated, file)
	}
}

func handleFileList(files service.FileService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := files.ListByProject(r.PathValue("projectNo"))
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

func handleFileDownload(files service.FileService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := files.Get(r.PathValue("id"))
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}

		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
		w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
		w.WriteHeader(http.StatusOK)
		w.Write(file.Data)
	}
}

func handleFileDelete(files service.FileService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if err := files.Delete(id); err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
	}
}
