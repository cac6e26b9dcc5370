// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package reconcile converges declared disk and disk attachment state
// against the live state held by the engine.  Each reconciler issues
// the minimal create or update calls needed to make the remote state
// match.
package reconcile

// Result reports the outcome of one reconcile pass.
type Result struct {
	// ID is the id of the entity after the pass
	ID string

	// Changed reports whether a create or update was issued
	Changed bool

	// Created reports that the entity did not exist and was created
	Created bool
}

// Ops supplies the collection-specific pieces of a reconcile pass.
type Ops struct {
	// Find locates the existing entity and returns its id
	Find func() (string, bool, error)

	// Create adds the desired entity and returns its id
	Create func() (string, error)

	// Equal reports whether the live entity already matches the
	// desired one
	Equal func(id string) (bool, error)

	// Update converges the live entity to the desired one
	Update func(id string) error
}

// Ensure performs create-if-absent / update-if-different against a
// remote collection.  Reconciling an entity against its own
// just-created representation reports no change.
func Ensure(ops Ops) (Result, error) {
	id, found, err := ops.Find()
	if err != nil {
		return Result{}, err
	}

	if !found {
		id, err = ops.Create()
		if err != nil {
			return Result{}, err
		}
		return Result{ID: id, Changed: true, Created: true}, nil
	}

	same, err := ops.Equal(id)
	if err != nil {
		return Result{}, err
	}
	if same {
		return Result{ID: id}, nil
	}

	if err := ops.Update(id); err != nil {
		return Result{}, err
	}
	return Result{ID: id, Changed: true}, nil
}
