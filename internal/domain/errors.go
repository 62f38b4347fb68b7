package domain

import "errors"

var (
	// ErrKeyNotFound indicates the store holds nothing under the key
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidTemplate indicates a catalog entry lists a color temperature without flux
	ErrInvalidTemplate = errors.New("fixture template is inconsistent")

	// ErrUnknownTemplate indicates the requested catalog fixture doesn't exist
	ErrUnknownTemplate = errors.New("fixture not in catalog")

	// ErrFixtureNotFound indicates the selection has no entry with that id
	ErrFixtureNotFound = errors.New("selected fixture not found")

	// ErrSavedNotFound indicates a saved custom fixture or result doesn't exist
	ErrSavedNotFound = errors.New("saved entry not found")

	// ErrUnknownPreset indicates the space preset name is not known
	ErrUnknownPreset = errors.New("unknown space preset")

	// ErrEfficiencyOutOfRange indicates a custom efficiency outside the accepted lm/W range
	ErrEfficiencyOutOfRange = errors.New("efficiency out of range")

	// ErrNothingToSave indicates the current result is incomplete
	ErrNothingToSave = errors.New("area, height, target and at least one fixture are required")

	// ErrIncompleteFixture indicates the custom fixture form lacks a name, lumen or watt
	ErrIncompleteFixture = errors.New("name, lumen and watt are required")

	// ErrWorkspaceNotFound indicates the workspace id is unknown or was evicted
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrUnknownControl indicates a hold was requested on a control that doesn't exist
	ErrUnknownControl = errors.New("unknown control")
)
