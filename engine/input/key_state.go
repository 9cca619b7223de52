package input

import "sync"

// KeyState tracks which keys are currently held. It is written from the window's key
// callbacks and read once per engine tick.
type KeyState interface {
	// KeyDown marks a key as held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyDown(keyCode uint32)

	// KeyUp marks a key as released.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// Pressed reports whether a key is held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//
	// Returns:
	//   - bool: true if the key is held
	Pressed(keyCode uint32) bool

	// Reset releases every key, e.g. when the window loses focus.
	Reset()
}

type keyStateImpl struct {
	mu   *sync.Mutex
	keys map[uint32]bool
}

var _ KeyState = &keyStateImpl{}

// NewKeyState creates a KeyState with no keys held.
//
// Returns:
//   - KeyState: the new key state
func NewKeyState() KeyState {
	return &keyStateImpl{
		mu:   &sync.Mutex{},
		keys: make(map[uint32]bool),
	}
}

func (k *keyStateImpl) KeyDown(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys[keyCode] = true
}

func (k *keyStateImpl) KeyUp(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.keys, keyCode)
}

func (k *keyStateImpl) Pressed(keyCode uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.keys[keyCode]
}

func (k *keyStateImpl) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.keys)
}
