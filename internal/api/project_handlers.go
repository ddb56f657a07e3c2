package api

import (
	"net/http"

	"fabshop-api/service"

	"go.uber.org/zap"
)

func handleProjectCreate(projects service.ProjectService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input service.ProjectCreateInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		project, err := projects.Create(input)
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}

		logger.Info("project created", zap.String("project_no", project.ProjectNo))
		writeJSON(w, http.StatusCreated, project)
	}
}

func handleProjectList(projects service.ProjectService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := projects.List()
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": views})
	}
}

func handleProjectGet(projects service.ProjectService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := projects.Get(r.PathValue("projectNo"))
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func handleProjectUpdate(projects service.ProjectService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input service.ProjectUpdateInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		project, err := projects.Update(r.PathValue("projectNo"), input)
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, project)
	}
}

func handleProjectDelete(projects service.ProjectService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectNo := r.PathValue("projectNo")
		if err := projects.Delete(projectNo); err != nil {
			respondServiceError(w, logger, err)
			return
		}

		logger.Info("project deleted", zap.String("project_no", projectNo))
		writeJSON(w, http.StatusOK, map[string]string{"deleted": projectNo})
	}
}

// handleProjectCompletion surfaces aggregation failures instead of
// degrading; this endpoint is the drift oracle.
func handleProjectCompletion(completion service.CompletionService, projects service.ProjectService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectNo := r.PathValue("projectNo")
		if _, err := projects.Get(projectNo); err != nil {
			respondServiceError(w, logger, err)
			return
		}

		result, err := completion.Calculate(projectNo)
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
