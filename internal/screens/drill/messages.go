package drill

import (
	sess "github.com/ifedorova/langdrill/internal/session"
)

// drillInitMsg is sent when the engine has been built and the session start
// event persisted.
type drillInitMsg struct {
	Engine    *sess.Engine
	SessionID string
	Err       error
}

// feedbackDoneMsg is sent when the learner dismisses the feedback overlay.
type feedbackDoneMsg struct{}

// drillEndMsg triggers the session end flow.
type drillEndMsg struct{}
