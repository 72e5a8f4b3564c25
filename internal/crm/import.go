// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crm

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"code.hybscloud.com/fnx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ImportOptions tunes ImportContacts.
type ImportOptions struct {
	// Workers bounds parallel validation; zero means GOMAXPROCS.
	Workers int
	// Atomic stores all valid records in one transaction.
	Atomic bool
}

// ImportStats summarises an import.
type ImportStats struct {
	Saved   int
	Invalid int
	// Problems holds one message per rejected field, prefixed with the
	// record number, e.g. "record 3: Contact.Name: Name is required.".
	Problems []string
}

// DecodeContacts reads a YAML list of contacts.
func DecodeContacts(r io.Reader) ([]Contact, error) {
	var cs []Contact
	if err := yaml.NewDecoder(r).Decode(&cs); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse contacts: %w", err)
	}
	return cs, nil
}

// ImportContacts validates records in parallel, then stores the valid ones
// in input order. Invalid records are counted and reported, not stored. A
// storage failure stops the import; the error says how many were saved.
func ImportContacts(records []Contact, opts ImportOptions) fnx.ReaderTaskResult[Env, ImportStats] {
	return func(ctx context.Context, env Env) fnx.Result[ImportStats] {
		checked, err := validateAll(ctx, env, records, opts.Workers)
		if err != nil {
			return fnx.FailErr[ImportStats](err)
		}

		var stats ImportStats
		var valid []Contact
		for i, v := range checked {
			c, ok := v.Value()
			if !ok {
				stats.Invalid++
				for _, msg := range v.Errors() {
					stats.Problems = append(stats.Problems, fmt.Sprintf("record %d: %s", i+1, msg))
				}
				continue
			}
			valid = append(valid, c)
		}

		if opts.Atomic {
			n := env.Repo.SaveAll(valid).Run(ctx)
			return fnx.MapResult(n, func(n int) ImportStats {
				stats.Saved = n
				env.Logger.Info("contacts imported", zap.Int("saved", stats.Saved), zap.Int("invalid", stats.Invalid))
				return stats
			})
		}

		r, final := saveEach(env, valid).Run(ctx, stats)
		if err := r.Err(); err != nil {
			return fnx.FailErr[ImportStats](fmt.Errorf("import stopped after %d contacts: %w", final.Saved, err))
		}
		env.Logger.Info("contacts imported", zap.Int("saved", final.Saved), zap.Int("invalid", final.Invalid))
		return fnx.Ok(final)
	}
}

// validateAll stamps every record and validates it, at most workers at a time.
func validateAll(ctx context.Context, env Env, records []Contact, workers int) ([]fnx.Validation[Contact], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	now := env.now()
	out := make([]fnx.Validation[Contact], len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rec := range records {
		rec.ID = env.NewID()
		rec.CreatedAt, rec.UpdatedAt = now, now
		g.Go(func() error {
			if gctx.Err() != nil {
				return fnx.ErrCancelled
			}
			out[i] = ValidateContact(rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// saveEach stores cs one by one, counting saves in the state.
func saveEach(env Env, cs []Contact) fnx.StateTaskResult[ImportStats, fnx.Unit] {
	loop := fnx.StateTaskResultOf[ImportStats](fnx.Unit{})
	for _, c := range cs {
		loop = fnx.BindStateTaskResult(loop, func(fnx.Unit) fnx.StateTaskResult[ImportStats, fnx.Unit] {
			saved := fnx.LiftStateTaskResult[ImportStats](env.Repo.Save(c))
			return fnx.BindStateTaskResult(saved, func(fnx.Unit) fnx.StateTaskResult[ImportStats, fnx.Unit] {
				return fnx.ModifyStateTaskResult(func(s ImportStats) ImportStats {
					s.Saved++
					return s
				})
			})
		})
	}
	return loop
}
