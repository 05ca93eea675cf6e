package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	name    string
	order   *[]string
	consume bool
	err     error
}

func (h *recordingHandler) HandleMapChanged(ev MapChanged) (bool, error) {
	*h.order = append(*h.order, h.name)
	return h.consume, h.err
}

func TestDispatchOrderIsRegistrationOrder(t *testing.T) {
	var order []string
	d := &Dispatcher{}
	d.Subscribe(&recordingHandler{name: "render", order: &order})
	d.Subscribe(&recordingHandler{name: "registry", order: &order})
	d.Subscribe(&recordingHandler{name: "spawner", order: &order})

	assert.NoError(t, d.Publish(MapChanged{}))
	assert.Equal(t, []string{"render", "registry", "spawner"}, order)
}

func TestConsumedStopsPropagation(t *testing.T) {
	var order []string
	d := &Dispatcher{}
	d.Subscribe(&recordingHandler{name: "first", order: &order})
	d.Subscribe(&recordingHandler{name: "eater", order: &order, consume: true})
	d.Subscribe(&recordingHandler{name: "late", order: &order})

	assert.NoError(t, d.Publish(MapChanged{}))
	assert.Equal(t, []string{"first", "eater"}, order)
}

func TestHandlerErrorAbortsDispatch(t *testing.T) {
	var order []string
	boom := errors.New("boom")
	d := &Dispatcher{}
	d.Subscribe(&recordingHandler{name: "first", order: &order, err: boom})
	d.Subscribe(&recordingHandler{name: "late", order: &order})

	assert.ErrorIs(t, d.Publish(MapChanged{}), boom)
	assert.Equal(t, []string{"first"}, order)
}
