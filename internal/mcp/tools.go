package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var askToolDef = mcp.NewTool("twin_ask",
	mcp.WithDescription("Ask the digital twin a question about the candidate's professional background. Returns a first-person answer; contact and identification requests are refused."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("The question to ask"),
	),
)

var searchToolDef = mcp.NewTool("twin_search",
	mcp.WithDescription("Run a semantic search over the candidate's profile chunks. Returns scored matches; contact information never appears in results."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Free-text search query"),
	),
	mcp.WithNumber("top_k",
		mcp.Description("Maximum number of results (default 8)"),
	),
	mcp.WithString("category",
		mcp.Description("Restrict results to an exact chunk category (e.g. experience, skills)"),
	),
	mcp.WithString("tag",
		mcp.Description("Restrict results to chunks carrying this tag (e.g. star, behavioral)"),
	),
)

var catalogToolDef = mcp.NewTool("twin_catalog",
	mcp.WithDescription("List the sample query catalog: curated recruiter questions with their behavioral flags."),
)

var profileToolDef = mcp.NewTool("twin_profile",
	mcp.WithDescription("Return the public profile view: personal summary, masked contact details, flattened experience stories, skills, education, projects, and career goals."),
)

var historyToolDef = mcp.NewTool("twin_history",
	mcp.WithDescription("List recently answered questions, newest first."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of transcripts (default 20)"),
	),
	mcp.WithNumber("offset",
		mcp.Description("Number of newest transcripts to skip"),
	),
)
