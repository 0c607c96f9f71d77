package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

// 试驾任务状态常量
const (
	StatePending   = "pending"
	StateRunning   = "running"
	StateCompleted = "completed"
	StateFailed    = "failed"
)

// 事件常量
const (
	EventStart    = "start"
	EventComplete = "complete"
	EventFail     = "fail"
)

// RunState 试驾任务状态快照
type RunState struct {
	RunID        uuid.UUID `json:"run_id"`
	CurrentState string    `json:"state"`
	Since        time.Time `json:"since"`
	Error        string    `json:"error,omitempty"`
}

// Machine 试驾任务状态机
type Machine struct {
	mu            sync.RWMutex
	runID         uuid.UUID
	fsm           *fsm.FSM
	state         *RunState
	onStateChange func(runID uuid.UUID, from, to string)
}

// NewMachine 创建状态机，初始状态为 pending
func NewMachine(runID uuid.UUID, onStateChange func(runID uuid.UUID, from, to string)) *Machine {
	m := &Machine{
		runID:         runID,
		onStateChange: onStateChange,
		state: &RunState{
			RunID:        runID,
			CurrentState: StatePending,
			Since:        time.Now(),
		},
	}

	m.fsm = fsm.NewFSM(
		StatePending,
		fsm.Events{
			{Name: EventStart, Src: []string{StatePending}, Dst: StateRunning},
			{Name: EventComplete, Src: []string{StateRunning}, Dst: StateCompleted},
			{Name: EventFail, Src: []string{StatePending, StateRunning}, Dst: StateFailed},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				if m.onStateChange != nil && e.Src != e.Dst {
					m.onStateChange(m.runID, e.Src, e.Dst)
				}
			},
		},
	)

	return m
}

// CurrentState 获取当前状态
func (m *Machine) CurrentState() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fsm.Current()
}

// GetState 获取状态副本
func (m *Machine) GetState() *RunState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stateCopy := *m.state
	stateCopy.CurrentState = m.fsm.Current()
	return &stateCopy
}

// Trigger 触发事件
func (m *Machine) Trigger(event string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fsm.Event(context.Background(), event); err != nil {
		return fmt.Errorf("trigger event %s: %w", event, err)
	}

	m.state.CurrentState = m.fsm.Current()
	m.state.Since = time.Now()
	return nil
}

// Fail 记录错误并进入 failed
func (m *Machine) Fail(cause error) error {
	m.mu.Lock()
	if cause != nil {
		m.state.Error = cause.Error()
	}
	m.mu.Unlock()
	return m.Trigger(EventFail)
}

// IsTerminal 是否已结束
func (m *Machine) IsTerminal() bool {
	s := m.CurrentState()
	return s == StateCompleted || s == StateFailed
}

// Manager 状态机管理器，只保存未结束的任务
type Manager struct {
	mu       sync.RWMutex
	machines map[uuid.UUID]*Machine
	onChange func(runID uuid.UUID, from, to string)
}

// NewManager 创建管理器
func NewManager(onChange func(runID uuid.UUID, from, to string)) *Manager {
	return &Manager{
		machines: make(map[uuid.UUID]*Machine),
		onChange: onChange,
	}
}

// GetOrCreate 获取或创建状态机
func (m *Manager) GetOrCreate(runID uuid.UUID) *Machine {
	m.mu.Lock()
	defer m.mu.Unlock()

	if machine, ok := m.machines[runID]; ok {
		return machine
	}

	machine := NewMachine(runID, m.onChange)
	m.machines[runID] = machine
	return machine
}

// Get 获取状态机
func (m *Manager) Get(runID uuid.UUID) (*Machine, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	machine, ok := m.machines[runID]
	return machine, ok
}

// Release 释放已结束的状态机
func (m *Manager) Release(runID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.machines, runID)
}

// ActiveCount 进行中的任务数
func (m *Manager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.machines)
}

// GetAllStates 获取所有进行中任务的状态
func (m *Manager) GetAllStates() map[uuid.UUID]*RunState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	states := make(map[uuid.UUID]*RunState)
	for runID, machine := range m.machines {
		states[runID] = machine.GetState()
	}
	return states
}
