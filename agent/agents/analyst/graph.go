package analyst

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	nodex "github.com/finwell-ai/advisor/agent/nodes/analyst"
)

func (a *Analyst) compileAnalyzeGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.ValidateRequest(in, a.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("collect_facts",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.CollectFacts(ctx, in, a.providers, a.fetchTimeout)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node collect_facts: %w", err)
	}

	if err := graph.AddLambdaNode("score_sentiment",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ScoreSentiment(in, a.scorer)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node score_sentiment: %w", err)
	}

	if err := graph.AddLambdaNode("synthesize",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.Synthesize(ctx, in, a.synthesizer, a.profile.Fallback)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node synthesize: %w", err)
	}

	if err := graph.AddLambdaNode("finalize",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.Finalize(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "collect_facts"},
		{"collect_facts", "score_sentiment"},
		{"score_sentiment", "synthesize"},
		{"synthesize", "finalize"},
		{"finalize", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("analyst.analyze"))
	if err != nil {
		return nil, fmt.Errorf("compile analyst graph: %w", err)
	}
	return runner, nil
}
