package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/libra/internal/transcript"
)

func parsed(pairs ...string) []transcript.ParsedMessage {
	var out []transcript.ParsedMessage
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, transcript.ParsedMessage{Sender: pairs[i], Text: pairs[i+1]})
	}
	return out
}

func sides(msgs []Message) []Side {
	out := make([]Side, len(msgs))
	for i, m := range msgs {
		out[i] = m.Side
	}
	return out
}

func TestResolve_SelfMarker(t *testing.T) {
	msgs := Resolve(parsed("Me", "hey", "Sam", "hi", "Me", "how are you?"))
	assert.Equal(t, []Side{SideSelf, SideOther, SideSelf}, sides(msgs))
}

func TestResolve_MarkerIsCaseInsensitive(t *testing.T) {
	msgs := Resolve(parsed("ME", "hey", "Sam", "hi", "me", "sup"))
	assert.Equal(t, []Side{SideSelf, SideOther, SideSelf}, sides(msgs))
}

func TestResolve_ParentheticalMarker(t *testing.T) {
	msgs := Resolve(parsed("Jordan (you)", "hey", "Sam", "hi", "Jordan (you)", "sup"))
	assert.Equal(t, []Side{SideSelf, SideOther, SideSelf}, sides(msgs))
}

// Without a marker the most frequent sender is assumed to be the other
// party and the runner-up the uploader.
func TestResolve_FrequencyFallback(t *testing.T) {
	msgs := Resolve(parsed(
		"Sam", "hey", "Sam", "you there?", "Sam", "hello??",
		"Jordan", "sorry, busy",
	))
	assert.Equal(t, []Side{SideOther, SideOther, SideOther, SideSelf}, sides(msgs))
}

func TestResolve_SingleSenderIsOther(t *testing.T) {
	msgs := Resolve(parsed("Sam", "hey", "Sam", "hello?", "Sam", "anyone there"))
	assert.Equal(t, []Side{SideOther, SideOther, SideOther}, sides(msgs))
}

func TestResolve_DerivesMessageFields(t *testing.T) {
	in := []transcript.ParsedMessage{
		{Sender: "Me", Text: "are you free tomorrow?", Timestamp: "1/15/24, 3:00 PM"},
		{Sender: "Sam", Text: "yeah", Timestamp: "not a time"},
		{Sender: "Me", Text: "great"},
	}
	msgs := Resolve(in)
	require.Len(t, msgs, 3)

	assert.True(t, msgs[0].HasQuestion)
	assert.Equal(t, 4, msgs[0].WordCount)
	require.NotNil(t, msgs[0].Timestamp)
	assert.Equal(t, 15, msgs[0].Timestamp.Hour())

	assert.Nil(t, msgs[1].Timestamp, "unparseable timestamps resolve to nil, not an error")
	assert.False(t, msgs[1].HasQuestion)
}
