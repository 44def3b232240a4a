package utils

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

func SendJSONReplyOK(w http.ResponseWriter, replyContent interface{}) {
	SendJSONReplyStatus(w, http.StatusOK, replyContent)
}

func SendJSONReplyStatus(w http.ResponseWriter, status int, replyContent interface{}) {
	toSend, err := json.Marshal(replyContent)
	if err != nil {
		panic(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(toSend)
	if err != nil {
		log.Error("error writing reply: ", err)
	}
}

// SendErrorReply writes a JSON error body with the given status.
func SendErrorReply(w http.ResponseWriter, status int, errMsg string) {
	SendJSONReplyStatus(w, status, struct {
		Error string `json:"error"`
	}{Error: errMsg})
}
