package mcp

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/internal/service/recommend"
	"github.com/sandevgo/weatherbot/pkg/log"
)

type Reporter interface {
	Report(ctx context.Context, city string) (string, error)
}

// Server exposes the weather report and the recommendation engine as MCP
// tools over stdio.
type Server struct {
	mcp    *server.MCPServer
	stdin  io.Reader
	stdout io.Writer
}

func NewServer(reporter Reporter, stdin io.Reader, stdout io.Writer) *Server {
	s := server.NewMCPServer(core.BotName, core.BotVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.AddTool(mcp.NewTool("get_weather",
		mcp.WithDescription("Get current weather and an activity recommendation for a city"),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("City name, e.g. London"),
		),
	), getWeather(reporter))

	s.AddTool(mcp.NewTool("recommend_activity",
		mcp.WithDescription("Recommend an activity for the given weather conditions"),
		mcp.WithNumber("temperature", mcp.Required(), mcp.Description("Temperature in °C")),
		mcp.WithString("condition", mcp.Required(), mcp.Description("Weather description, e.g. clear sky")),
		mcp.WithNumber("humidity", mcp.Required(), mcp.Description("Relative humidity in percent")),
		mcp.WithNumber("wind_speed", mcp.Required(), mcp.Description("Wind speed in km/h")),
		mcp.WithNumber("rainfall", mcp.Description("Rain over the last hour in mm, 0 if omitted")),
	), recommendActivity)

	return &Server{mcp: s, stdin: stdin, stdout: stdout}
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("serving MCP over stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, s.stdin, s.stdout)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func getWeather(reporter Reporter) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		city, err := request.RequireString("city")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		report, err := reporter.Report(ctx, city)
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Str("city", city).Msg("get_weather failed")
			return mcp.NewToolResultError(report), nil
		}
		return mcp.NewToolResultText(report), nil
	}
}

func recommendActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var c recommend.Conditions
	var err error

	if c.Temperature, err = request.RequireFloat("temperature"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if c.Condition, err = request.RequireString("condition"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if c.Humidity, err = request.RequireFloat("humidity"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if c.WindSpeed, err = request.RequireFloat("wind_speed"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c.Rainfall = request.GetFloat("rainfall", 0)

	return mcp.NewToolResultText(recommend.Recommend(c)), nil
}
