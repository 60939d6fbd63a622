package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerTripResource(srv, svc)
	registerDayTemplate(srv, svc)
}

func registerTripResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"tabi://trip",
		"Trip",
		mcp.WithResourceDescription("The whole trip: days, lodging, shopping list, expenses and rate."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		d, err := svc.Trip(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, d)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"tabi://days/{date}",
		"Day Itinerary",
		mcp.WithTemplateDescription("The schedule and weather of one trip day."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date := templateArg(request.Params.Arguments["date"])
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}

		day, err := svc.Day(ctx, date)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, day)
	})
}

// templateArg reads a URI template variable, which may arrive as a string or
// as a one-element list.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	case []any:
		if len(t) > 0 {
			s, _ := t[0].(string)
			return s
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
