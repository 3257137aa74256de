// Package urlutils expands short links and reports page titles, either
// on request or for every link posted when titles are enabled.
package urlutils

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"ggm/config"
	"ggm/internal/plugin"
	"ggm/internal/source"
	"ggm/util"
)

// ID is the registry id.
const ID = "urlutils"

var urlRe = regexp.MustCompile(`https?://[^\s<>"]+|www\.[^\s<>"]+`)

// URLUtils implements ?unshorten and ?title.
type URLUtils struct {
	*plugin.Table

	web    *source.Client
	titles bool
	logger *util.Logger
}

// New builds the plugin from its section.
//
//	titles         answer every posted link with its page title (no)
//	allow_private  also fetch loopback, private and link-local hosts (no)
func New(opts config.Options, deps plugin.Deps) (plugin.Plugin, error) {
	hc := deps.HTTPClient
	if !opts.Bool("allow_private", false) {
		hc = source.PublicOnly(deps.FetchTimeout)
	}
	u := &URLUtils{
		web:    source.New("URL", hc, nil),
		titles: opts.Bool("titles", false),
		logger: deps.Logger,
	}
	u.Table = plugin.NewTable(
		plugin.Command{
			Name:  "unshorten",
			Usage: "?unshorten URL follows redirects and returns where the link really goes.",
			Run:   u.unshorten,
		},
		plugin.Command{
			Name:  "title",
			Usage: "?title URL returns the title of the page.",
			Run:   u.title,
		},
	)
	return u, nil
}

// Name implements plugin.Plugin.
func (u *URLUtils) Name() string { return ID }

// HasCommand also claims plain chat lines carrying a link when titles
// are enabled.
func (u *URLUtils) HasCommand(line string) bool {
	if u.Table.HasCommand(line) {
		return true
	}
	return u.titles && !strings.HasPrefix(line, plugin.Marker) && findURL(line) != ""
}

// ParseCommand answers commands, and links in passing with their title.
// Passive lookups fail silently.
func (u *URLUtils) ParseCommand(ctx context.Context, line string) plugin.Reply {
	if u.Table.HasCommand(line) {
		return u.Table.ParseCommand(ctx, line)
	}
	link := findURL(line)
	if !u.titles || link == "" {
		return plugin.Reply{}
	}
	t, err := u.pageTitle(ctx, link)
	if err != nil {
		u.logger.Verbose("title of %s: %v", link, err)
		return plugin.Reply{}
	}
	if t == "" {
		return plugin.Reply{}
	}
	return plugin.Say("Title: " + t)
}

func (u *URLUtils) unshorten(ctx context.Context, args string) plugin.Reply {
	link := findURL(args)
	if link == "" {
		return plugin.Whisper("[Error]: Invalid URL")
	}
	final, err := u.web.Resolve(ctx, link)
	if err != nil {
		u.logger.Error("unshorten %s: %v", link, err)
		return plugin.Whisper("[Error]: Couldn't reach URL")
	}
	return plugin.Say(final)
}

func (u *URLUtils) title(ctx context.Context, args string) plugin.Reply {
	link := findURL(args)
	if link == "" {
		return plugin.Whisper("[Error]: Invalid URL")
	}
	t, err := u.pageTitle(ctx, link)
	if err != nil {
		u.logger.Error("title %s: %v", link, err)
		return plugin.Whisper("[Error]: Couldn't reach URL")
	}
	if t == "" {
		return plugin.Say("No title")
	}
	return plugin.Say("Title: " + t)
}

func (u *URLUtils) pageTitle(ctx context.Context, link string) (string, error) {
	body, err := u.web.Page(ctx, link)
	if err != nil {
		return "", err
	}
	return extractTitle(body), nil
}

// findURL returns the first link in text, with a scheme added to bare
// www. hosts.
func findURL(text string) string {
	m := urlRe.FindString(text)
	if strings.HasPrefix(m, "www.") {
		m = "http://" + m
	}
	return m
}

// extractTitle returns the whitespace-normalised text of the first
// <title> element outside of <svg>.
func extractTitle(page []byte) string {
	z := html.NewTokenizer(bytes.NewReader(page))
	depthSVG := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "svg":
				depthSVG++
			case "title":
				if depthSVG > 0 {
					continue
				}
				if z.Next() != html.TextToken {
					return ""
				}
				return strings.Join(strings.Fields(html.UnescapeString(string(z.Text()))), " ")
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "svg" && depthSVG > 0 {
				depthSVG--
			}
		}
	}
}
