package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
)

// Quest defines a quest template loaded from asset files.
type Quest struct {
	// Title is the quest's display name
	Title string `json:"title"`

	// Reward is the experience granted on completion
	Reward int `json:"reward"`

	// Task is the human-readable quest description
	Task string `json:"task"`
}

func (q *Quest) Validate() error {
	el := errors.NewErrorList()

	if q.Title == "" {
		el.Add(fmt.Errorf("title is required"))
	}
	if q.Reward < 1 {
		el.Add(fmt.Errorf("reward must be positive"))
	}
	if q.Task == "" {
		el.Add(fmt.Errorf("task is required"))
	}

	return el.Err()
}

// QuestInstance is one acceptance of a quest template by a player. It is
// mutated once on completion, then immutable.
type QuestInstance struct {
	InstanceId string
	Quest      *Quest
	Completed  bool
}

// NewQuestInstance creates an instance of the given template.
func NewQuestInstance(q *Quest) *QuestInstance {
	return &QuestInstance{
		InstanceId: uuid.New().String(),
		Quest:      q,
	}
}

// Complete marks the quest completed and returns its reward. Completing an
// already-completed quest returns 0.
func (qi *QuestInstance) Complete() int {
	if qi.Completed {
		return 0
	}
	qi.Completed = true
	return qi.Quest.Reward
}
