package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classify(msgs []Message) Vibe {
	return ClassifyVibe(msgs, ComputeStats(msgs))
}

func TestClassifyVibe_Dry(t *testing.T) {
	msgs := []Message{
		msg("how was the trip? did you see much?", SideSelf, nil),
		msg("k", SideOther, nil),
		msg("ok", SideOther, nil),
		msg("fine", SideOther, nil),
		msg("yeah", SideOther, nil),
	}
	assert.Equal(t, "Dry", classify(msgs).Label)
}

func TestClassifyVibe_Flirty(t *testing.T) {
	msgs := []Message{
		msg("hey you", SideSelf, nil),
		msg("hey cutie 😘", SideOther, nil),
		msg("what are you doing", SideSelf, nil),
		msg("miss you already 😍", SideOther, nil),
	}
	assert.Equal(t, "Flirty", classify(msgs).Label)
}

func TestClassifyVibe_Engaged(t *testing.T) {
	msgs := []Message{
		msg("I got the job!", SideSelf, nil),
		msg("no way, that's awesome! tell me more about it 😂", SideOther, nil),
		msg("started last week", SideSelf, nil),
		msg("haha amazing, how was the first day for you then", SideOther, nil),
	}
	assert.Equal(t, "Engaged", classify(msgs).Label)
}

func TestClassifyVibe_Cold(t *testing.T) {
	msgs := []Message{
		msg("hey, sorry about yesterday", SideSelf, at(10, 0)),
		msg("whatever you say 🙄🙄", SideOther, at(12, 0)),
		msg("can we talk about it?", SideSelf, at(12, 5)),
		msg("there is nothing more to say 😒", SideOther, at(15, 0)),
	}
	assert.Equal(t, "Cold", classify(msgs).Label)
}

func TestClassifyVibe_LowEnergy(t *testing.T) {
	msgs := []Message{
		msg("hey", SideSelf, nil),
		msg("you around later today?", SideSelf, nil),
		msg("we could grab food", SideSelf, nil),
		msg("maybe later today yes", SideOther, nil),
		msg("hello again friend", SideSelf, nil),
	}
	assert.Equal(t, "Low Energy", classify(msgs).Label)
}

func TestClassifyVibe_FallbackBalanced(t *testing.T) {
	msgs := []Message{
		msg("see you at the station", SideSelf, nil),
		msg("i will be there early", SideOther, nil),
		msg("platform four as usual", SideSelf, nil),
		msg("sounds right to me", SideOther, nil),
	}
	assert.Equal(t, "Balanced", classify(msgs).Label)
}

func TestClassifyVibe_FallbackInterested(t *testing.T) {
	msgs := []Message{
		msg("long day at work", SideSelf, nil),
		msg("let me check the plan", SideOther, nil),
		msg("we could also leave it", SideOther, nil),
		msg("i will look tonight", SideOther, nil),
	}
	assert.Equal(t, "Interested", classify(msgs).Label)
}

func TestClassifyVibe_FallbackMixed(t *testing.T) {
	msgs := []Message{
		msg("hey", SideSelf, nil),
		msg("work was quite busy", SideOther, nil),
		msg("how did the meeting go", SideSelf, nil),
		msg("we can talk later", SideOther, nil),
		msg("see you back home", SideSelf, nil),
		msg("night night see you", SideOther, nil),
		msg("good night then", SideSelf, nil),
	}
	assert.Equal(t, "Mixed", classify(msgs).Label)
}
