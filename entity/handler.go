package entity

import (
	"slices"

	"github.com/milk9111/kongclimb/levelstate"
)

// Handler is the live object collection of the current level.
type Handler struct {
	objects []Object
}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Add(o Object) {
	if o == nil {
		return
	}
	h.objects = append(h.objects, o)
}

func (h *Handler) Remove(o Object) {
	h.objects = slices.DeleteFunc(h.objects, func(x Object) bool { return x == o })
}

func (h *Handler) Clear() {
	h.objects = nil
}

func (h *Handler) Objects() []Object {
	return h.objects
}

func (h *Handler) Len() int {
	return len(h.objects)
}

// GameObjects exposes the collection to level states.
func (h *Handler) GameObjects() []levelstate.GameObject {
	out := make([]levelstate.GameObject, 0, len(h.objects))
	for _, o := range h.objects {
		out = append(out, o)
	}
	return out
}

func (h *Handler) Player() (*Player, bool) {
	return first[*Player](h.objects)
}

func (h *Handler) Antagonist() (*Antagonist, bool) {
	return first[*Antagonist](h.objects)
}

func (h *Handler) Princess() (*Princess, bool) {
	return first[*Princess](h.objects)
}

func (h *Handler) Barrels() []*Barrel {
	var out []*Barrel
	for _, o := range h.objects {
		if b, ok := o.(*Barrel); ok {
			out = append(out, b)
		}
	}
	return out
}

// Tick advances every object once.
func (h *Handler) Tick() {
	for _, o := range h.objects {
		o.Tick()
	}
}

// Sweep drops barrels that left play.
func (h *Handler) Sweep() int {
	before := len(h.objects)
	h.objects = slices.DeleteFunc(h.objects, func(o Object) bool {
		b, ok := o.(*Barrel)
		return ok && b.Dead()
	})
	return before - len(h.objects)
}

func (h *Handler) Draw(s levelstate.Surface) {
	for _, o := range h.objects {
		o.Draw(s)
	}
}

func first[T Object](objects []Object) (T, bool) {
	for _, o := range objects {
		if v, ok := o.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
