// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package changes

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/redmer/go-fwapi/apierr"
	"github.com/redmer/go-fwapi/conn"
	"github.com/redmer/go-fwapi/logger"
	"github.com/redmer/go-fwapi/model"
)

// Media types and endpoints of the change operations.
const (
	assetUpdateType = "application/vnd.fotoware.assetupdate+json"
	moveRequestType = "application/vnd.fotoware.move-request+json"

	backgroundTasksPath = "/fotoweb/me/background-tasks/"
	uploadsPath         = "/fotoweb/api/uploads"
)

// Destination guards.
var (
	ErrNotMovableTo    = errors.New("assets cannot be moved to this collection")
	ErrNotUploadableTo = errors.New("assets cannot be uploaded to this collection")
)

// TaskID identifies a queued change.
type TaskID = uuid.UUID

type taskKind int

const (
	kindMetadata taskKind = iota
	kindMove
	kindUpload
)

// task is one queued change. Which fields are set depends on the kind.
type task struct {
	id     TaskID
	kind   taskKind
	failed bool

	assetHref string
	fields    map[string]model.FieldValue

	destination string

	filename string
	contents []byte
}

// submittedTask tracks a backgrounded change accepted by the server.
type submittedTask struct {
	id         TaskID
	kind       taskKind
	statusPath string
}

// Manager queues asset changes and commits them in FIFO order. It is safe
// for concurrent use.
type Manager struct {
	api *conn.Connection

	mu        sync.Mutex
	queue     []*task
	submitted []submittedTask
}

// NewManager returns an empty change queue committing over the given
// connection.
func NewManager(c *conn.Connection) *Manager {
	return &Manager{api: c}
}

// SetValue queues a single metadata field update on an asset. Custom
// fields are keyed by their number, built-in fields by name.
func (m *Manager) SetValue(asset *model.Asset, field string, value any) TaskID {
	return m.SetValues(asset, map[string]model.FieldValue{
		field: model.NewFieldValue(value),
	})
}

// SetValues queues a metadata update of several fields on an asset,
// applied as one PATCH.
func (m *Manager) SetValues(asset *model.Asset, fields map[string]model.FieldValue) TaskID {
	return m.enqueue(&task{
		kind:      kindMetadata,
		assetHref: asset.Href,
		fields:    fields,
	})
}

// Move queues moving an asset into a collection. Collections that do not
// accept moves are rejected up front with ErrNotMovableTo.
func (m *Manager) Move(asset *model.Asset, dest *model.Collection) (TaskID, error) {
	if !dest.CanMoveTo {
		return uuid.Nil, ErrNotMovableTo
	}
	return m.enqueue(&task{
		kind:        kindMove,
		assetHref:   asset.Href,
		destination: dest.Href,
	}), nil
}

// Upload queues uploading a new file into a collection. Collections that
// do not accept uploads are rejected up front with ErrNotUploadableTo.
func (m *Manager) Upload(filename string, contents []byte, dest *model.Collection) (TaskID, error) {
	if !dest.CanUploadTo {
		return uuid.Nil, ErrNotUploadableTo
	}
	return m.enqueue(&task{
		kind:        kindUpload,
		filename:    filename,
		contents:    contents,
		destination: dest.Href,
	}), nil
}

func (m *Manager) enqueue(tk *task) TaskID {
	tk.id = uuid.New()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, tk)
	return tk.id
}

// HasUncommitted reports whether changes are still queued, including
// changes whose previous commit was rejected.
func (m *Manager) HasUncommitted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue) > 0
}

// Failed lists the queued changes the server rejected on the last commit.
// They are retried by the next Commit.
func (m *Manager) Failed() []TaskID {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []TaskID
	for _, tk := range m.queue {
		if tk.failed {
			ids = append(ids, tk.id)
		}
	}
	return ids
}

// Commit sends the queued changes in order. A change the server rejects
// (4xx/5xx) is marked failed, stays queued and does not stop the commit;
// an authentication, transport or parse failure aborts immediately,
// leaving the current and all later changes queued. Accepted moves and
// uploads move to the submitted set for CheckSubmitted.
func (m *Manager) Commit(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var kept []*task
	for i, tk := range m.queue {
		sub, err := m.run(ctx, tk)
		if err == nil {
			tk.failed = false
			if sub != nil {
				m.submitted = append(m.submitted, *sub)
			}
			continue
		}
		if apierr.IsRequest(err) {
			tk.failed = true
			logger.Warnw("change rejected by server, kept in queue",
				"task", tk.id.String(), "error", err)
			kept = append(kept, tk)
			continue
		}
		m.queue = append(kept, m.queue[i:]...)
		return err
	}
	m.queue = kept
	return nil
}

// CheckSubmitted polls the progress of backgrounded moves and uploads and
// returns their statuses. Finished tasks, done or failed, are no longer
// tracked afterwards.
func (m *Manager) CheckSubmitted(ctx context.Context) (map[TaskID]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	statuses := make(map[TaskID]string, len(m.submitted))
	var pending []submittedTask
	for _, st := range m.submitted {
		resp, err := m.api.Get(ctx, st.statusPath)
		if err != nil {
			return nil, err
		}

		var status string
		if st.kind == kindUpload {
			us, err := model.DecodeBatchUploadStatus(resp.Body)
			if err != nil {
				return nil, err
			}
			status = us.Status
		} else {
			ts, err := model.DecodeTaskStatus(resp.Body)
			if err != nil {
				return nil, err
			}
			status = ts.Task.Status
		}

		statuses[st.id] = status
		if status != model.TaskDone && status != model.TaskFailed {
			pending = append(pending, st)
		}
	}
	m.submitted = pending
	return statuses, nil
}
