package controller

type (
	// ControlRequestBody embeds the control object under a "control" key.
	ControlRequestBody = struct {
		Control *ControlDTO `json:"control"`
	}
)
