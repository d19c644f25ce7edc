// Package screen routes between the game's top level screens: the title
// menu, active play and the victory and game over menus.
package screen

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/kongclimb/common"
)

type Screen interface {
	// Enter is called every time the screen becomes current.
	Enter()
	Update() error
	Draw(dst *ebiten.Image)
}

// Manager implements levelstate.ScreenManager.
type Manager struct {
	screens map[common.ScreenID]Screen
	current Screen
	id      common.ScreenID
	history []common.ScreenID
}

func NewManager() *Manager {
	return &Manager{screens: make(map[common.ScreenID]Screen)}
}

func (m *Manager) Register(id common.ScreenID, s Screen) {
	if s == nil {
		return
	}
	m.screens[id] = s
}

// ChangeScreen switches to id right away. Unknown ids are logged and ignored.
func (m *Manager) ChangeScreen(id common.ScreenID) {
	s, ok := m.screens[id]
	if !ok {
		log.Printf("[screen] no screen registered for %s", id)
		return
	}
	log.Printf("[screen] -> %s", id)
	m.current = s
	m.id = id
	m.history = append(m.history, id)
	s.Enter()
}

// Current returns the id of the active screen.
func (m *Manager) Current() (common.ScreenID, bool) {
	return m.id, m.current != nil
}

// History lists every screen change in order.
func (m *Manager) History() []common.ScreenID {
	return m.history
}

func (m *Manager) Update() error {
	if m.current == nil {
		return nil
	}
	return m.current.Update()
}

func (m *Manager) Draw(dst *ebiten.Image) {
	if m.current == nil {
		return
	}
	m.current.Draw(dst)
}
