package view

import (
	"fmt"
	"strings"
)

const NoVotingsMessage = "There're no current votings"

func NoCampaignsMessage(categorie string) string {
	if strings.TrimSpace(categorie) == "" {
		return "No current crowdfundings"
	}
	return fmt.Sprintf("No current %s crowdfundings", categorie)
}

// ImageURL resolves a content identifier against an IPFS gateway.
func ImageURL(gateway, cid string) string {
	if cid == "" {
		return ""
	}
	return strings.TrimRight(gateway, "/") + "/ipfs/" + cid
}
