package processor

import "phishsim-server/internal/store"

// Action is a lifecycle command applied to a campaign
type Action string

const (
	ActionSchedule Action = "schedule"
	ActionLaunch   Action = "launch"
	ActionPause    Action = "pause"
	ActionResume   Action = "resume"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

// transitions maps a current status and an action to the resulting status.
// Statuses absent from the table are terminal.
var transitions = map[string]map[Action]string{
	store.CampaignStatusDraft: {
		ActionSchedule: store.CampaignStatusScheduled,
		ActionLaunch:   store.CampaignStatusSending,
		ActionCancel:   store.CampaignStatusCancelled,
	},
	store.CampaignStatusScheduled: {
		ActionPause:  store.CampaignStatusPaused,
		ActionCancel: store.CampaignStatusCancelled,
	},
	store.CampaignStatusSending: {
		ActionPause:    store.CampaignStatusPaused,
		ActionComplete: store.CampaignStatusSent,
		ActionCancel:   store.CampaignStatusCancelled,
	},
	store.CampaignStatusPaused: {
		ActionResume: store.CampaignStatusSending,
		ActionCancel: store.CampaignStatusCancelled,
	},
}

// NextStatus returns the status a campaign in status from moves to under action
func NextStatus(from string, action Action) (string, bool) {
	to, ok := transitions[from][action]
	return to, ok
}

// actionFor finds the action that moves a campaign from one status to another
func actionFor(from, to string) (Action, bool) {
	for action, next := range transitions[from] {
		if next == to {
			return action, true
		}
	}
	return "", false
}
