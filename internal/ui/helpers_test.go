package ui

import (
	apitypes "github.com/zhubert/ragchat/internal/api"
)

func cid(id string) apitypes.ConversationID {
	return apitypes.ConversationID(id)
}
