// Package detail drives a single asset's detail session: the edit
// lifecycle, the media carousel, and the destructive actions that need an
// explicit confirmation. One controller corresponds to one open detail
// view and is never shared across assets.
package detail

import (
	"context"
	"errors"

	"lokarni/pkg/assets"
	"lokarni/pkg/catalog"
	"lokarni/pkg/media"
)

// State is the edit lifecycle of a detail session.
type State string

const (
	StateViewing State = "viewing"
	StateEditing State = "editing"
	StateSaving  State = "saving"
)

var (
	ErrNotEditing           = errors.New("no edit in progress")
	ErrEditInProgress       = errors.New("an edit is already in progress")
	ErrConfirmationRequired = errors.New("deleting an asset requires explicit confirmation")
)

// EditBuffer holds the draft values of every editable field. It is seeded
// from the last confirmed asset when an edit starts and sent whole on save,
// untouched fields included.
type EditBuffer struct {
	Name           string `json:"name"`
	Tags           string `json:"tags"`
	Description    string `json:"description"`
	Type           string `json:"type"`
	ModelVersion   string `json:"model_version"`
	BaseModel      string `json:"base_model"`
	Creator        string `json:"creator"`
	NSFWLevel      string `json:"nsfw_level"`
	TriggerWords   string `json:"trigger_words"`
	PositivePrompt string `json:"positive_prompt"`
	NegativePrompt string `json:"negative_prompt"`
}

func bufferFrom(a assets.Asset) EditBuffer {
	return EditBuffer{
		Name:           a.Name,
		Tags:           a.Tags,
		Description:    a.Description,
		Type:           a.Type,
		ModelVersion:   a.ModelVersion,
		BaseModel:      a.BaseModel,
		Creator:        a.Creator,
		NSFWLevel:      a.NSFWLevel,
		TriggerWords:   a.TriggerWords,
		PositivePrompt: a.PositivePrompt,
		NegativePrompt: a.NegativePrompt,
	}
}

func (b EditBuffer) updateFields() catalog.UpdateFields {
	return catalog.UpdateFields{
		Name:           b.Name,
		Tags:           b.Tags,
		Description:    b.Description,
		Type:           b.Type,
		ModelVersion:   b.ModelVersion,
		BaseModel:      b.BaseModel,
		Creator:        b.Creator,
		NSFWLevel:      b.NSFWLevel,
		TriggerWords:   b.TriggerWords,
		PositivePrompt: b.PositivePrompt,
		NegativePrompt: b.NegativePrompt,
	}
}

// MediaView is the carousel position rendered to the client.
type MediaView struct {
	Path        string     `json:"path"`
	Kind        media.Kind `json:"kind"`
	Index       int        `json:"index"`
	Count       int        `json:"count"`
	Placeholder bool       `json:"placeholder"`
}

// Controller holds the session state for one asset. It is not safe for
// concurrent use; callers serialize access through the session's lock.
type Controller struct {
	asset      assets.Asset
	state      State
	buffer     EditBuffer
	mediaIndex int
}

func NewController(a assets.Asset) *Controller {
	return &Controller{asset: a, state: StateViewing}
}

// Asset returns the last server-confirmed snapshot. Draft edits live in
// the buffer and never leak into it until a save succeeds.
func (c *Controller) Asset() assets.Asset { return c.asset }

func (c *Controller) State() State { return c.state }

func (c *Controller) Buffer() EditBuffer { return c.buffer }

// BeginEdit moves viewing -> editing and seeds the buffer from the
// confirmed asset, discarding whatever a previous cancelled edit left.
func (c *Controller) BeginEdit() error {
	if c.state != StateViewing {
		return ErrEditInProgress
	}
	c.buffer = bufferFrom(c.asset)
	c.state = StateEditing
	return nil
}

// CancelEdit drops the draft and returns to viewing.
func (c *Controller) CancelEdit() error {
	if c.state != StateEditing {
		return ErrNotEditing
	}
	c.buffer = EditBuffer{}
	c.state = StateViewing
	return nil
}

// SetBuffer replaces the draft wholesale. Only valid while editing.
func (c *Controller) SetBuffer(b EditBuffer) error {
	if c.state != StateEditing {
		return ErrNotEditing
	}
	c.buffer = b
	return nil
}

// Save pushes the buffer to the backend. On success the confirmed asset
// replaces the local snapshot and the session returns to viewing. On
// failure the session falls back to editing with the buffer intact, so
// the user can retry or cancel.
func (c *Controller) Save(ctx context.Context, client catalog.Client) (assets.Asset, error) {
	if c.state != StateEditing {
		return assets.Asset{}, ErrNotEditing
	}

	c.state = StateSaving
	updated, err := client.UpdateAsset(ctx, c.asset.ID, c.buffer.updateFields())
	if err != nil {
		c.state = StateEditing
		return assets.Asset{}, err
	}

	c.asset = updated
	c.buffer = EditBuffer{}
	c.state = StateViewing
	c.clampMediaIndex()
	return updated, nil
}

// ToggleFavorite flips the flag server-side and adopts the confirmed
// result. It is available in every state and does not touch the buffer.
func (c *Controller) ToggleFavorite(ctx context.Context, client catalog.Client) (assets.Asset, error) {
	updated, err := client.ToggleFavorite(ctx, c.asset.ID)
	if err != nil {
		return assets.Asset{}, err
	}

	c.asset = updated
	return updated, nil
}

// Delete removes the asset from the backend. It refuses to act without
// confirmed=true; there is no undo on the other side of this call.
func (c *Controller) Delete(ctx context.Context, client catalog.Client, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	return client.DeleteAsset(ctx, c.asset.ID)
}

// NextMedia advances the carousel, wrapping past the last entry.
func (c *Controller) NextMedia() {
	n := len(c.asset.MediaFiles)
	if n == 0 {
		return
	}
	c.mediaIndex = (c.mediaIndex + 1) % n
}

// PrevMedia steps back, wrapping from the first entry to the last.
func (c *Controller) PrevMedia() {
	n := len(c.asset.MediaFiles)
	if n == 0 {
		return
	}
	c.mediaIndex = (c.mediaIndex - 1 + n) % n
}

// CurrentMedia reports the carousel position. An asset without media
// files yields a placeholder rather than an error.
func (c *Controller) CurrentMedia() MediaView {
	n := len(c.asset.MediaFiles)
	if n == 0 {
		return MediaView{Kind: media.KindImage, Placeholder: true}
	}

	path := c.asset.MediaFiles[c.mediaIndex]
	return MediaView{
		Path:  path,
		Kind:  media.KindOf(path),
		Index: c.mediaIndex,
		Count: n,
	}
}

// clampMediaIndex keeps the carousel in range after a save shrinks the
// media list.
func (c *Controller) clampMediaIndex() {
	n := len(c.asset.MediaFiles)
	if n == 0 {
		c.mediaIndex = 0
		return
	}
	if c.mediaIndex >= n {
		c.mediaIndex = n - 1
	}
}
