package controller

import (
	"encoding/json"
	"io"
	"net/http"

	api "github.com/bedrock-ops/mc-controller-api/api/controller"
	"github.com/bedrock-ops/mc-controller-api/internal/utils"
	log "github.com/sirupsen/logrus"
)

const (
	defaultLogsTail = "100"
)

var (
	serverEngine engine
	catalog      *levelCatalog
	version      string
)

// InitHandlers wires the handlers to the docker engine and the world data
// directory described by the config.
func InitHandlers(config *Config, projectFilePath string) {
	version = LoadVersion(projectFilePath)

	catalog = newLevelCatalog(config.DataDir)

	var err error

	serverEngine, err = newDockerEngine(config.DockerHost, config.ServerName)
	if err != nil {
		log.Error("unable to create docker client")
		panic(err)
	}

	log.Infof("controlling container %s", config.ServerName)
}

func getVersionHandler(w http.ResponseWriter, _ *http.Request) {
	log.Debug("handling get version")

	utils.SendJSONReplyOK(w, api.GetVersionResponseBody{Version: version})
}

func getLevelsHandler(w http.ResponseWriter, _ *http.Request) {
	log.Debug("handling get levels")

	levels, err := catalog.listLevels()
	if err != nil {
		log.Error(err)
		utils.SendErrorReply(w, http.StatusInternalServerError, err.Error())

		return
	}

	utils.SendJSONReplyOK(w, levels)
}

func getLevelHandler(w http.ResponseWriter, r *http.Request) {
	log.Debug("handling get level")

	levelName := utils.ExtractPathVar(r, levelNamePathVar)

	level, err := catalog.getLevel(levelName)

	switch {
	case err == errInvalidLevelName:
		utils.SendErrorReply(w, http.StatusBadRequest, err.Error())
	case err == errLevelNotFound:
		utils.SendErrorReply(w, http.StatusNotFound, err.Error())
	case err != nil:
		log.Error(err)
		utils.SendErrorReply(w, http.StatusInternalServerError, err.Error())
	default:
		utils.SendJSONReplyOK(w, level)
	}
}

func controlHandler(w http.ResponseWriter, r *http.Request) {
	log.Debug("handling control")

	var reqBody api.ControlRequestBody

	err := json.NewDecoder(r.Body).Decode(&reqBody)
	if err != nil || reqBody.Control == nil {
		log.Error("invalid control body: ", err)
		utils.SendErrorReply(w, http.StatusBadRequest, "invalid control body")

		return
	}

	control := reqBody.Control

	err = serverEngine.Control(r.Context(), control.Action)

	switch {
	case err == errUnknownAction:
		utils.SendErrorReply(w, http.StatusBadRequest, err.Error())
	case err != nil && isNotFoundErr(err):
		utils.SendErrorReply(w, http.StatusNotFound, err.Error())
	case err != nil:
		log.Error(err)
		utils.SendErrorReply(w, http.StatusInternalServerError, err.Error())
	default:
		log.Infof("executed %s on managed container", control.Action)
		utils.SendJSONReplyStatus(w, http.StatusAccepted, control)
	}
}

func getStatusHandler(w http.ResponseWriter, r *http.Request) {
	log.Debug("handling get status")

	containerStatus, err := serverEngine.Status(r.Context())
	if err != nil {
		if isNotFoundErr(err) {
			utils.SendErrorReply(w, http.StatusNotFound, err.Error())

			return
		}

		log.Error(err)
		utils.SendErrorReply(w, http.StatusInternalServerError, err.Error())

		return
	}

	utils.SendJSONReplyOK(w, containerStatus)
}

func getLogsHandler(w http.ResponseWriter, r *http.Request) {
	log.Debug("handling get logs")

	tail := r.URL.Query().Get("tail")
	if tail == "" {
		tail = defaultLogsTail
	}

	logs, err := serverEngine.Logs(r.Context(), tail)
	if err != nil {
		if isNotFoundErr(err) {
			utils.SendErrorReply(w, http.StatusNotFound, err.Error())

			return
		}

		log.Error(err)
		utils.SendErrorReply(w, http.StatusInternalServerError, err.Error())

		return
	}

	defer func() {
		if closeErr := logs.Close(); closeErr != nil {
			log.Warn(closeErr)
		}
	}()

	w.Header().Set("Content-Type", "text/plain")

	_, err = io.Copy(w, logs)
	if err != nil {
		log.Warn("error streaming logs: ", err)
	}
}
