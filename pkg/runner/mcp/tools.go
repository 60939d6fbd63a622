package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/tabi/pkg/trip"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListDaysTool(srv, svc)
	registerGetItineraryTool(srv, svc)
	registerCreateItemTool(srv, svc)
	registerUpdateItemTool(srv, svc)
	registerDeleteItemTool(srv, svc)
	registerListShoppingTool(srv, svc)
	registerToggleShoppingTool(srv, svc)
	registerListExpensesTool(srv, svc)
	registerGetWeatherTool(srv, svc)
	registerSearchItemsTool(srv, svc)
}

func itemTypeNames() []string {
	types := trip.ItemTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func registerListDaysTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_days",
		mcp.WithDescription("List the days of the trip with weekday labels and item counts."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		days, err := svc.ListDays(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"days":  days,
			"count": len(days),
		})
	})
}

func registerGetItineraryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_itinerary",
		mcp.WithDescription("Get the schedule of one day ordered by time, with its weather."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day as YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		day, err := svc.Day(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(day)
	})
}

func registerCreateItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_item",
		mcp.WithDescription("Add an item to a day. The day is created if it is not part of the trip yet."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day as YYYY-MM-DD."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("What happens, e.g. the sight or restaurant."),
		),
		mcp.WithString("time",
			mcp.Required(),
			mcp.Description("Time of day as H:MM or HH:MM."),
		),
		mcp.WithString("type",
			mcp.Description("Item type; defaults to other."),
			mcp.Enum(itemTypeNames()...),
		),
		mcp.WithString("location",
			mcp.Description("Address or place name."),
		),
		mcp.WithString("note",
			mcp.Description("Free-form note."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date     string  `json:"date"`
			Name     string  `json:"name"`
			Time     string  `json:"time"`
			Type     *string `json:"type"`
			Location string  `json:"location"`
			Note     string  `json:"note"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.CreateItem(ctx, ItemOptions{
			Date:     args.Date,
			Type:     args.Type,
			Name:     &args.Name,
			Time:     &args.Time,
			Location: &args.Location,
			Note:     &args.Note,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_item",
		mcp.WithDescription("Change fields of an item. Omitted fields are kept; the id never changes."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day as YYYY-MM-DD."),
		),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Item id within the day."),
		),
		mcp.WithString("name", mcp.Description("New name.")),
		mcp.WithString("time", mcp.Description("New time as H:MM or HH:MM.")),
		mcp.WithString("type",
			mcp.Description("New item type."),
			mcp.Enum(itemTypeNames()...),
		),
		mcp.WithString("location", mcp.Description("New location.")),
		mcp.WithString("note", mcp.Description("New note.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date     string  `json:"date"`
			ID       int     `json:"id"`
			Name     *string `json:"name"`
			Time     *string `json:"time"`
			Type     *string `json:"type"`
			Location *string `json:"location"`
			Note     *string `json:"note"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.UpdateItem(ctx, args.ID, ItemOptions{
			Date:     args.Date,
			Type:     args.Type,
			Name:     args.Name,
			Time:     args.Time,
			Location: args.Location,
			Note:     args.Note,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_item",
		mcp.WithDescription("Delete an item from a day. Deleting a missing id fails."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day as YYYY-MM-DD."),
		),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Item id within the day."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date string `json:"date"`
			ID   int    `json:"id"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := svc.DeleteItem(ctx, args.Date, args.ID); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"date":    args.Date,
			"id":      args.ID,
			"deleted": true,
		})
	})
}

func registerListShoppingTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_shopping",
		mcp.WithDescription("List the shopping checklist with indexes and prices."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := svc.Shopping(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"items": items,
			"count": len(items),
		})
	})
}

func registerToggleShoppingTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_shopping",
		mcp.WithDescription("Check or uncheck a shopping item."),
		mcp.WithString("item",
			mcp.Required(),
			mcp.Description("Checklist index or exact item name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		item, err := request.RequireString("item")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ToggleShopping(ctx, item)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListExpensesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_expenses",
		mcp.WithDescription("List expenses by date with totals in both currencies."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Expenses(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetWeatherTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_weather",
		mcp.WithDescription("Get the forecast of a trip day."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day as YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		info, err := svc.Forecast(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(info)
	})
}

func registerSearchItemsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_items",
		mcp.WithDescription("Find itinerary items by name, location or note."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to look for."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 20)."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)
		results, err := svc.SearchItems(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
