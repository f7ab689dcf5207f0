package messaging

import (
	"testing"
	"time"

	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestThreadFilterSymmetry(t *testing.T) {
	// Same filter regardless of which party builds it.
	assert.Equal(t, NewThreadFilter("7", "A", "B"), NewThreadFilter("7", "B", "A"))
}

func TestThreadFilterMatchesBothDirections(t *testing.T) {
	f := NewThreadFilter("7", "A", "B")

	aToB := models.Message{ProductID: "7", SenderID: "A", ReceiverID: "B", CreatedAt: time.Now()}
	bToA := models.Message{ProductID: "7", SenderID: "B", ReceiverID: "A", CreatedAt: time.Now()}

	assert.True(t, f.Matches(aToB))
	assert.True(t, f.Matches(bToA))
}

func TestThreadFilterRejectsOtherPairsAndProducts(t *testing.T) {
	f := NewThreadFilter("7", "A", "B")

	otherProduct := models.Message{ProductID: "9", SenderID: "A", ReceiverID: "B"}
	thirdParty := models.Message{ProductID: "7", SenderID: "A", ReceiverID: "C"}
	unrelated := models.Message{ProductID: "7", SenderID: "C", ReceiverID: "D"}

	assert.False(t, f.Matches(otherProduct))
	assert.False(t, f.Matches(thirdParty))
	assert.False(t, f.Matches(unrelated))
}
