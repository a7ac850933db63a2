package search

import "fmt"

// Run dispatches to the traversal selected by s.
func Run(s Strategy, start State, opts ...Option) (*Result, error) {
	switch s {
	case StrategyBFS:
		return BFS(start, opts...)
	case StrategyDFS:
		return DFS(start, opts...)
	case StrategyIDDFS:
		return IDDFS(start, opts...)
	case StrategyUCS:
		return UCS(start, opts...)
	case StrategyAStarNaive:
		return AStarNaive(start, opts...)
	case StrategyAStar:
		return AStar(start, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}
