// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// Phonebook.  There is no persistence, nor is there any automatic
// sharing.  The entire phonebook is behind a single global semaphore
// to protect against concurrent updates.
//
// This is mostly intended as a simple reference implementation of
// Phonebook that can be used for testing, including in-process
// testing of higher-level components.
package memory

import (
	"context"
	"sync"

	"github.com/diffeo/go-phonebook/phonebook"
)

// New creates a new Phonebook interface that operates purely in
// memory, with default options.
func New() phonebook.Phonebook {
	return NewWithOptions(phonebook.Options{})
}

// NewWithOptions creates a new in-memory Phonebook with explicit
// options.  Every call creates an independent phonebook.
func NewWithOptions(opts phonebook.Options) phonebook.Phonebook {
	return &memPhonebook{
		opts:   opts,
		byID:   make(map[string]*entry),
		byName: make(map[string]*entry),
	}
}

// entry is the stored form of a phonebook entry.  The maps and the
// ordered list share pointers to it, so an update is visible through
// all of them.
type entry struct {
	value phonebook.Entry
}

type memPhonebook struct {
	opts phonebook.Options
	sem  sync.Mutex

	// entries holds live entries in creation order.
	entries []*entry
	byID    map[string]*entry
	byName  map[string]*entry
}

// do runs f under the global lock.  Context cancellation is checked
// once before taking the lock; nothing in here blocks otherwise.
func (pb *memPhonebook) do(ctx context.Context, f func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pb.sem.Lock()
	defer pb.sem.Unlock()
	return f()
}

func (pb *memPhonebook) Create(ctx context.Context, in phonebook.EntryInput) (result phonebook.Entry, err error) {
	if err = phonebook.Validate(in); err != nil {
		return
	}
	err = pb.do(ctx, func() error {
		if _, taken := pb.byName[in.Name]; taken {
			return phonebook.ErrDuplicateName
		}
		e := &entry{
			value: phonebook.Entry{
				ID:     phonebook.NewID(),
				Name:   in.Name,
				Number: in.Number,
			},
		}
		pb.entries = append(pb.entries, e)
		pb.byID[e.value.ID] = e
		pb.byName[e.value.Name] = e
		result = e.value
		return nil
	})
	return
}

func (pb *memPhonebook) Entries(ctx context.Context) (result []phonebook.Entry, err error) {
	err = pb.do(ctx, func() error {
		result = make([]phonebook.Entry, len(pb.entries))
		for i, e := range pb.entries {
			result[i] = e.value
		}
		return nil
	})
	return
}

func (pb *memPhonebook) Entry(ctx context.Context, id string) (result phonebook.Entry, err error) {
	if id, err = phonebook.ParseID(id); err != nil {
		return
	}
	err = pb.do(ctx, func() error {
		e, present := pb.byID[id]
		if !present {
			return phonebook.ErrNoSuchEntry{ID: id}
		}
		result = e.value
		return nil
	})
	return
}

func (pb *memPhonebook) UpdateEntry(ctx context.Context, id string, in phonebook.EntryInput) (result phonebook.Entry, err error) {
	if id, err = phonebook.ParseID(id); err != nil {
		return
	}
	if err = phonebook.ValidateUpdate(pb.opts, in); err != nil {
		return
	}
	err = pb.do(ctx, func() error {
		e, present := pb.byID[id]
		if !present {
			return phonebook.ErrNoSuchEntry{ID: id}
		}
		if other, taken := pb.byName[in.Name]; taken && other != e {
			return phonebook.ErrDuplicateName
		}
		delete(pb.byName, e.value.Name)
		e.value.Name = in.Name
		e.value.Number = in.Number
		pb.byName[e.value.Name] = e
		result = e.value
		return nil
	})
	return
}

func (pb *memPhonebook) DeleteEntry(ctx context.Context, id string) (err error) {
	if id, err = phonebook.ParseID(id); err != nil {
		return
	}
	return pb.do(ctx, func() error {
		e, present := pb.byID[id]
		if !present {
			return nil
		}
		delete(pb.byID, id)
		delete(pb.byName, e.value.Name)
		for i, other := range pb.entries {
			if other == e {
				pb.entries = append(pb.entries[:i], pb.entries[i+1:]...)
				break
			}
		}
		return nil
	})
}

func (pb *memPhonebook) Count(ctx context.Context) (count int, err error) {
	err = pb.do(ctx, func() error {
		count = len(pb.entries)
		return nil
	})
	return
}
