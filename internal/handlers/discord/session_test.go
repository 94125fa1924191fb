package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// fakeSession records everything the handlers send to Discord
type fakeSession struct {
	mu        sync.Mutex
	responses []*discordgo.InteractionResponse
	dms       map[string][]*discordgo.MessageSend
	dmErr     error
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		dms: make(map[string][]*discordgo.MessageSend),
	}
}

func (f *fakeSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.dmErr != nil {
		return nil, f.dmErr
	}
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dms[channelID] = append(f.dms[channelID], data)
	return &discordgo.Message{ID: "message-id", ChannelID: channelID}, nil
}

func (f *fakeSession) lastResponse() *discordgo.InteractionResponse {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}
