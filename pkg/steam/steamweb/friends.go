// Gameshelf
// Copyright (c) 2026 The Gameshelf Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Gameshelf.
//
// Gameshelf is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gameshelf is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gameshelf.  If not, see <http://www.gnu.org/licenses/>.

package steamweb

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// PersonaState is the online status Steam reports for a player.
type PersonaState int

const (
	Offline PersonaState = iota
	Online
	Busy
	Away
	Snooze
	LookingToTrade
	LookingToPlay
)

func (s PersonaState) String() string {
	switch s {
	case Offline:
		return "Offline"
	case Online:
		return "Online"
	case Busy:
		return "Busy"
	case Away:
		return "Away"
	case Snooze:
		return "Snooze"
	case LookingToTrade:
		return "Looking to Trade"
	case LookingToPlay:
		return "Looking to Play"
	default:
		return "Unknown"
	}
}

// maxSummaryIDs is the most ids GetPlayerSummaries accepts per request.
const maxSummaryIDs = 100

type Friend struct {
	SteamID      string `json:"steamid"`
	Relationship string `json:"relationship"`
	FriendSince  int64  `json:"friend_since"`
}

type PlayerSummary struct {
	SteamID     string       `json:"steamid"`
	Name        string       `json:"personaname"`
	CurrentGame string       `json:"gameextrainfo"`
	GameID      string       `json:"gameid"`
	AvatarURL   string       `json:"avatarfull"`
	ProfileURL  string       `json:"profileurl"`
	Status      PersonaState `json:"personastate"`
}

type friendListParams struct {
	Key          string `qs:"key"`
	SteamID      string `qs:"steamid"`
	Relationship string `qs:"relationship"`
}

type friendListResponse struct {
	FriendsList struct {
		Friends []Friend `json:"friends"`
	} `json:"friendslist"`
}

// FriendsList returns the friends of steamID. Private profiles and failed
// requests yield an empty list.
func (c *Client) FriendsList(ctx context.Context, steamID string) []Friend {
	if !c.checkCredential("friends_list") || steamID == "" {
		return []Friend{}
	}

	var resp friendListResponse
	err := c.get(ctx, "ISteamUser/GetFriendList/v1/", friendListParams{
		Key:          c.apiKey,
		SteamID:      steamID,
		Relationship: "friend",
	}, &resp)
	if err != nil {
		log.Warn().Err(err).Msg("failed to fetch Steam friends list")
		return []Friend{}
	}

	if resp.FriendsList.Friends == nil {
		return []Friend{}
	}
	return resp.FriendsList.Friends
}

type playerSummariesParams struct {
	Key      string `qs:"key"`
	SteamIDs string `qs:"steamids"`
}

type playerSummariesResponse struct {
	Response struct {
		Players []PlayerSummary `json:"players"`
	} `json:"response"`
}

// PlayerSummaries returns name and presence for each id. Ids are sent in
// batches; a failed batch is skipped.
func (c *Client) PlayerSummaries(ctx context.Context, ids []string) []PlayerSummary {
	players := []PlayerSummary{}
	if !c.checkCredential("player_summaries") || len(ids) == 0 {
		return players
	}

	for start := 0; start < len(ids); start += maxSummaryIDs {
		batch := ids[start:min(start+maxSummaryIDs, len(ids))]

		var resp playerSummariesResponse
		err := c.get(ctx, "ISteamUser/GetPlayerSummaries/v2/", playerSummariesParams{
			Key:      c.apiKey,
			SteamIDs: strings.Join(batch, ","),
		}, &resp)
		if err != nil {
			log.Warn().Err(err).Msg("failed to fetch Steam player summaries")
			continue
		}
		players = append(players, resp.Response.Players...)
	}
	return players
}

// FriendsWithPresence combines FriendsList and PlayerSummaries.
func (c *Client) FriendsWithPresence(ctx context.Context, steamID string) []PlayerSummary {
	friends := c.FriendsList(ctx, steamID)
	if len(friends) == 0 {
		return []PlayerSummary{}
	}
	ids := make([]string, len(friends))
	for i, f := range friends {
		ids[i] = f.SteamID
	}
	return c.PlayerSummaries(ctx, ids)
}
