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

	"github.com/rs/zerolog/log"
)

const notAvailable = "N/A"

// rankedByVote is the QueryFiles ordering used for search.
const rankedByVote = 9

type WorkshopItem struct {
	ID            string
	Title         string
	Description   string
	Creator       string
	PreviewURL    string
	Tags          []string
	Subscriptions int
	Favorited     int
	Views         int
}

type WorkshopPage struct {
	Items []WorkshopItem
	Total int
}

type queryFilesParams struct {
	Key            string `qs:"key"`
	AppID          string `qs:"appid"`
	SearchText     string `qs:"search_text,omitempty"`
	Page           int    `qs:"page"`
	NumPerPage     int    `qs:"numperpage"`
	QueryType      int    `qs:"query_type"`
	ReturnMetadata bool   `qs:"return_metadata"`
	ReturnTags     bool   `qs:"return_tags"`
	ReturnPreviews bool   `qs:"return_previews"`
	ReturnVoteData bool   `qs:"return_vote_data"`
	ReturnDetails  bool   `qs:"return_details"`
}

type getDetailsParams struct {
	Key              string   `qs:"key"`
	PublishedFileIDs []string `qs:"publishedfileids,index"`
	IncludeTags      bool     `qs:"includetags"`
}

type publishedFile struct {
	PublishedFileID *string `json:"publishedfileid"`
	Title           *string `json:"title"`
	Description     *string `json:"file_description"`
	ShortDesc       *string `json:"short_description"`
	Creator         *string `json:"creator"`
	PreviewURL      string  `json:"preview_url"`
	Tags            []struct {
		Tag string `json:"tag"`
	} `json:"tags"`
	Subscriptions int `json:"subscriptions"`
	Favorited     int `json:"favorited"`
	Views         int `json:"views"`
}

type publishedFilesResponse struct {
	Response struct {
		Details    []publishedFile `json:"publishedfiledetails"`
		Total      int             `json:"total"`
		TotalCount int             `json:"totalcount"`
	} `json:"response"`
}

// SearchWorkshopItems runs a ranked workshop search for appID. Pages
// start at 1.
func (c *Client) SearchWorkshopItems(ctx context.Context, appID, query string, page, pageSize int) WorkshopPage {
	empty := WorkshopPage{Items: []WorkshopItem{}}
	if !c.checkCredential("search_workshop_items") || appID == "" {
		return empty
	}

	var resp publishedFilesResponse
	err := c.get(ctx, "IPublishedFileService/QueryFiles/v1/", queryFilesParams{
		Key:            c.apiKey,
		AppID:          appID,
		SearchText:     query,
		Page:           max(page, 1),
		NumPerPage:     max(pageSize, 1),
		QueryType:      rankedByVote,
		ReturnMetadata: true,
		ReturnTags:     true,
		ReturnPreviews: true,
		ReturnVoteData: true,
		ReturnDetails:  true,
	}, &resp)
	if err != nil {
		log.Warn().Err(err).Msg("failed to search Steam Workshop")
		return empty
	}

	return WorkshopPage{
		Items: toItems(resp.Response.Details),
		Total: max(resp.Response.Total, resp.Response.TotalCount),
	}
}

// WorkshopItemDetails returns details for the given published file ids.
func (c *Client) WorkshopItemDetails(ctx context.Context, ids []string) []WorkshopItem {
	if !c.checkCredential("workshop_item_details") || len(ids) == 0 {
		return []WorkshopItem{}
	}

	var resp publishedFilesResponse
	err := c.get(ctx, "IPublishedFileService/GetDetails/v1/", getDetailsParams{
		Key:              c.apiKey,
		PublishedFileIDs: ids,
		IncludeTags:      true,
	}, &resp)
	if err != nil {
		log.Warn().Err(err).Msg("failed to get Steam Workshop item details")
		return []WorkshopItem{}
	}

	return toItems(resp.Response.Details)
}

func toItems(files []publishedFile) []WorkshopItem {
	items := make([]WorkshopItem, 0, len(files))
	for i := range files {
		f := &files[i]

		desc := f.Description
		if desc == nil {
			desc = f.ShortDesc
		}

		tags := make([]string, 0, len(f.Tags))
		for _, t := range f.Tags {
			tags = append(tags, t.Tag)
		}

		items = append(items, WorkshopItem{
			ID:            orNA(f.PublishedFileID),
			Title:         orNA(f.Title),
			Description:   orNA(desc),
			Creator:       orNA(f.Creator),
			PreviewURL:    f.PreviewURL,
			Tags:          tags,
			Subscriptions: f.Subscriptions,
			Favorited:     f.Favorited,
			Views:         f.Views,
		})
	}
	return items
}

func orNA(s *string) string {
	if s == nil {
		return notAvailable
	}
	return *s
}
