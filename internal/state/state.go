// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — стек состояний. Активно только верхнее; оверлей (справка)
// кладётся поверх редактора через Push и снимается Pop.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current возвращает верхнее состояние или nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// SetState заменяет весь стек одним состоянием
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
	sm.Push(newState)
}

// Push кладёт состояние поверх текущего
func (sm *StateMachine) Push(s State) {
	if s == nil {
		return
	}
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхнее состояние. Последнее состояние тоже можно снять.
func (sm *StateMachine) Pop() {
	top := sm.Current()
	if top == nil {
		return
	}
	top.Exit()
	sm.stack[len(sm.stack)-1] = nil
	sm.stack = sm.stack[:len(sm.stack)-1]
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if cur := sm.Current(); cur != nil {
		cur.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if cur := sm.Current(); cur != nil {
		cur.Draw(screen)
	}
}
