// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"code.hybscloud.com/fnx"
	"code.hybscloud.com/fnx/seq"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNothingToUndo is reported by UndoContact when no snapshot is held.
var ErrNothingToUndo = errors.New("crm: nothing to undo")

// Env carries the dependencies of every operation.
type Env struct {
	Repo     Repository
	Logger   *zap.Logger
	Notifier *Notifier
	Undo     *UndoStack
	Now      func() time.Time
	NewID    func() string
}

// NewEnv returns an Env over repo with wall-clock time and random UUIDs.
func NewEnv(repo Repository, logger *zap.Logger, undoDepth int) Env {
	return Env{
		Repo:     repo,
		Logger:   logger,
		Notifier: NewNotifier(),
		Undo:     NewUndoStack(undoDepth),
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

func (env Env) now() time.Time {
	return env.Now().UTC()
}

// notFound reports id as missing.
func notFound(id string) error {
	return fmt.Errorf("contact %s: %w", id, ErrNotFound)
}

func requireFound(id string) func(fnx.Option[Contact]) fnx.TaskResult[Contact] {
	return func(o fnx.Option[Contact]) fnx.TaskResult[Contact] {
		return fnx.FromResult(fnx.MatchOption(o, fnx.Ok[Contact], func() fnx.Result[Contact] {
			return fnx.FailErr[Contact](notFound(id))
		}))
	}
}

// GetContact loads one contact.
func GetContact(id string) fnx.ReaderTaskResult[Env, Contact] {
	return fnx.FromReaderTaskResult(func(env Env) fnx.TaskResult[Contact] {
		return fnx.BindTaskResult(env.Repo.Get(id), requireFound(id))
	})
}

// CreateContact validates input, assigns it an ID and timestamps, and
// stores it. Any ID or timestamps already set on input are replaced.
func CreateContact(input Contact) fnx.ReaderTaskResult[Env, Contact] {
	return func(ctx context.Context, env Env) fnx.Result[Contact] {
		return fnx.Do(func(s *fnx.DoScope) fnx.Result[Contact] {
			c := input
			c.ID = env.NewID()
			c.CreatedAt = env.now()
			c.UpdatedAt = c.CreatedAt
			c, ok := fnx.AwaitResult(s, ValidateContact(c).ToResult())
			if !ok {
				return fnx.Abort[Contact](s)
			}
			if _, ok := fnx.Await(s, env.Repo.Save(c)); !ok {
				return fnx.Abort[Contact](s)
			}
			env.Logger.Info("contact created", zap.String("id", c.ID), zap.String("name", c.Name))
			env.Notifier.Publish(Event{Kind: EventCreated, Contact: c})
			return fnx.Ok(c)
		}).Run(ctx)
	}
}

// Filter narrows ListContacts.
type Filter struct {
	// City keeps contacts in this city, compared case-insensitively.
	City string
	// Query keeps contacts whose name or email contains it.
	Query string
	// Offset skips that many matches.
	Offset int
	// Limit caps the result; zero means no cap.
	Limit int
}

func (f Filter) pipe() seq.Pipe[Contact, Contact] {
	p := seq.Identity[Contact]()
	if f.City != "" {
		p = seq.Then(p, seq.Filter(func(c Contact) bool { return strings.EqualFold(c.Address.Geo.City, f.City) }))
	}
	if q := strings.ToLower(f.Query); q != "" {
		p = seq.Then(p, seq.Filter(func(c Contact) bool {
			return strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q)
		}))
	}
	if f.Offset > 0 {
		p = seq.Then(p, seq.Skip[Contact](f.Offset))
	}
	if f.Limit > 0 {
		p = seq.Then(p, seq.Take[Contact](f.Limit))
	}
	return p
}

// ListContacts returns the contacts matching f, ordered by name.
func ListContacts(f Filter) fnx.ReaderTaskResult[Env, []Contact] {
	return fnx.FromReaderTaskResult(func(env Env) fnx.TaskResult[[]Contact] {
		return fnx.MapTaskResult(env.Repo.List(), f.pipe().ApplySlice)
	})
}

// PatchOutcome is the result of PatchContact.
type PatchOutcome struct {
	Contact Contact
	// Changes has one entry per changed field, such as
	// `Contact.Name: "Ada" -> "Ada L."`.
	Changes []string
}

// PatchContact applies p to the stored contact. The patched contact must
// pass ContactValidator. A patch that changes nothing stores nothing. The
// previous version is kept for UndoContact.
func PatchContact(id string, p Patch) fnx.ReaderTaskResult[Env, PatchOutcome] {
	return func(ctx context.Context, env Env) fnx.Result[PatchOutcome] {
		return fnx.Do(func(s *fnx.DoScope) fnx.Result[PatchOutcome] {
			current, ok := fnx.Await(s, GetContact(id).Task(env))
			if !ok {
				return fnx.Abort[PatchOutcome](s)
			}
			next, changes := p.Apply(current).Run()
			if len(changes) == 0 {
				return fnx.Ok(PatchOutcome{Contact: current})
			}
			next.UpdatedAt = env.now()
			if _, ok := fnx.AwaitResult(s, ValidateContact(next).ToResult()); !ok {
				return fnx.Abort[PatchOutcome](s)
			}
			if _, ok := fnx.Await(s, env.Repo.Save(next)); !ok {
				return fnx.Abort[PatchOutcome](s)
			}
			env.Undo.Push(current)
			env.Logger.Info("contact updated", zap.String("id", id), zap.Strings("changes", changes))
			env.Notifier.Publish(Event{Kind: EventUpdated, Contact: next})
			return fnx.Ok(PatchOutcome{Contact: next, Changes: changes})
		}).Run(ctx)
	}
}

// UndoContact restores the version stored before the latest patch.
func UndoContact(id string) fnx.ReaderTaskResult[Env, Contact] {
	return func(ctx context.Context, env Env) fnx.Result[Contact] {
		return fnx.Do(func(s *fnx.DoScope) fnx.Result[Contact] {
			if _, ok := fnx.Await(s, GetContact(id).Task(env)); !ok {
				return fnx.Abort[Contact](s)
			}
			snap, ok := fnx.AwaitResult(s, fnx.OptionToResult(env.Undo.Pop(id), "").
				MapErr(func(error) error { return fmt.Errorf("contact %s: %w", id, ErrNothingToUndo) }))
			if !ok {
				return fnx.Abort[Contact](s)
			}
			restored, ok := snap.TryResume(func(prev Contact) Contact {
				prev.UpdatedAt = env.now()
				return prev
			})
			if !s.Ensure(ok, "snapshot already used") {
				return fnx.Abort[Contact](s)
			}
			if _, ok := fnx.Await(s, env.Repo.Save(restored)); !ok {
				return fnx.Abort[Contact](s)
			}
			env.Logger.Info("contact restored", zap.String("id", id))
			env.Notifier.Publish(Event{Kind: EventRestored, Contact: restored})
			return fnx.Ok(restored)
		}).Run(ctx)
	}
}

// DeleteContact removes a contact and its undo history.
func DeleteContact(id string) fnx.ReaderTaskResult[Env, fnx.Unit] {
	return func(ctx context.Context, env Env) fnx.Result[fnx.Unit] {
		return fnx.Do(func(s *fnx.DoScope) fnx.Result[fnx.Unit] {
			current, ok := fnx.Await(s, GetContact(id).Task(env))
			if !ok {
				return fnx.Abort[fnx.Unit](s)
			}
			deleted, ok := fnx.Await(s, env.Repo.Delete(id))
			if !ok || !deleted && !s.Fail(notFound(id)) {
				return fnx.Abort[fnx.Unit](s)
			}
			env.Undo.Forget(id)
			env.Logger.Info("contact deleted", zap.String("id", id))
			env.Notifier.Publish(Event{Kind: EventDeleted, Contact: current})
			return fnx.Ok(fnx.Unit{})
		}).Run(ctx)
	}
}
