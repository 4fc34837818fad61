package interaction

import "net/url"

// ShareActionKind classifies the side effect the presentation layer
// should perform after a share is recorded.
type ShareActionKind string

const (
	// ShareCopyText asks the caller to copy Text to the clipboard.
	ShareCopyText ShareActionKind = "copy_text"
	// ShareOpenURL asks the caller to open URL in a new context.
	ShareOpenURL ShareActionKind = "open_url"
)

// Known platform tags. Platform is free-form; anything unknown falls
// back to opening the canonical post URL.
const (
	PlatformCopyLink = "copy_link"
	PlatformTwitter  = "twitter"
	PlatformFacebook = "facebook"
	PlatformLinkedIn = "linkedin"
)

// ShareAction is the instruction returned with a recorded share.
type ShareAction struct {
	Kind ShareActionKind `json:"kind"`
	Text string          `json:"text,omitempty"`
	URL  string          `json:"url,omitempty"`
}

// ShareResult reports the updated share count and the action to run.
type ShareResult struct {
	Count  int         `json:"count"`
	Action ShareAction `json:"action"`
}

func shareAction(platform, postURL string) ShareAction {
	encoded := url.QueryEscape(postURL)
	switch platform {
	case PlatformCopyLink:
		return ShareAction{Kind: ShareCopyText, Text: postURL}
	case PlatformTwitter:
		return ShareAction{Kind: ShareOpenURL, URL: "https://twitter.com/intent/tweet?url=" + encoded}
	case PlatformFacebook:
		return ShareAction{Kind: ShareOpenURL, URL: "https://www.facebook.com/sharer/sharer.php?u=" + encoded}
	case PlatformLinkedIn:
		return ShareAction{Kind: ShareOpenURL, URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + encoded}
	default:
		return ShareAction{Kind: ShareOpenURL, URL: postURL}
	}
}
