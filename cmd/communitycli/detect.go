package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/altsoph/community-loglike/internal/config"
	"github.com/altsoph/community-loglike/pkg/community"
	"github.com/altsoph/community-loglike/pkg/graph"
	"github.com/altsoph/community-loglike/pkg/store"
)

var detectConfig = config.LoadDetectionConfig()

var (
	detectModel    string
	detectGamma    float64
	detectMu       float64
	detectSeed     int64
	detectPersist  bool
	detectShowTree bool
)

var detectCmd = &cobra.Command{
	Use:   "detect <graph-file>",
	Short: "Run best_partition over a graph and print the resulting communities",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectModel, "model", detectConfig.Model, "objective: ppm, dcppm, ilfr, ilfrs")
	detectCmd.Flags().Float64Var(&detectGamma, "gamma", detectConfig.DefaultGamma, "resolution parameter (ppm/dcppm)")
	detectCmd.Flags().Float64Var(&detectMu, "mu", 0.5, "mixing parameter (ilfr/ilfrs)")
	detectCmd.Flags().Int64Var(&detectSeed, "seed", detectConfig.RandomSeed, "random seed (0 = deterministic sweep order)")
	detectCmd.Flags().BoolVar(&detectPersist, "persist", false, "save the run to Postgres (requires COMMUNITY_DATABASE_URL/DATABASE_URL)")
	detectCmd.Flags().BoolVar(&detectShowTree, "show-hierarchy", false, "print the full dendrogram's community hierarchy to stderr")
}

func runDetect(cmd *cobra.Command, args []string) error {
	start := time.Now()
	logger := slog.Default()

	logger.Info("community: loading graph", "path", args[0])
	g, err := loadGraph(args[0])
	if err != nil {
		return fmt.Errorf("detect: loading graph: %w", err)
	}
	logger.Info("community: graph loaded",
		"vertices", g.NumVertices(), "edges", g.NumEdges())
	fmt.Fprintf(cmd.ErrOrStderr(), "loaded %s vertices, %s edges\n",
		humanize.Comma(int64(g.NumVertices())), humanize.Comma(int64(g.NumEdges())))

	pars := map[string]float64{"gamma": detectGamma, "mu": detectMu}

	var rng *rand.Rand
	if detectSeed != 0 {
		rng = rand.New(rand.NewSource(detectSeed))
	}

	logger.Info("community: running multilevel detection", "model", detectModel)
	dendro, err := community.GenerateDendrogram(g, nil, detectModel, pars, rng)
	if err != nil {
		return fmt.Errorf("detect: generating dendrogram: %w", err)
	}
	partition, err := community.PartitionAtLevel(dendro, len(dendro)-1)
	if err != nil {
		return fmt.Errorf("detect: lifting final partition: %w", err)
	}
	logger.Info("community: detection complete", "levels", len(dendro))

	for v, c := range partition {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v, c)
	}

	mod, err := community.Modularity(g, partition, detectGamma)
	if err == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "modularity\t% 0.6f\n", mod)
	}
	loglike, err := community.ModelLogLikelihood(g, partition, detectModel, pars)
	if err == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "loglike\t% 0.6f\n", loglike)
	}

	if detectShowTree {
		printHierarchy(cmd, dendro, g)
	}

	if detectPersist {
		if err := persistRun(cmd, g, dendro, pars, loglike, logger); err != nil {
			logger.Warn("community: persisting run failed", "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: run not persisted: %v\n", err)
		}
	}

	logger.Info("community: done", "elapsed", time.Since(start))
	fmt.Fprintf(cmd.ErrOrStderr(), "started %s\n", humanize.Time(start))
	return nil
}

// printHierarchy writes every dendrogram-level community's size and
// internal weight to stderr, for eyeballing the coarsening structure
// of a run (a readable companion to the raw vertex->community lines
// on stdout).
func printHierarchy(cmd *cobra.Command, dendro community.Dendrogram, g *graph.Graph) {
	communities, _, err := community.BuildCommunities(dendro, g)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: hierarchy unavailable: %v\n", err)
		return
	}
	sort.Slice(communities, func(i, j int) bool {
		if communities[i].Level != communities[j].Level {
			return communities[i].Level < communities[j].Level
		}
		return communities[i].ID < communities[j].ID
	})
	for _, c := range communities {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\tcommunity=%s\tsize=%d\tdegree=% 0.3f\tinternal=% 0.3f\tparent=%s\n",
			c.Level, c.ID, c.Size, c.Degree, c.InternalWeight, c.ParentID)
	}
}

// persistRun saves the completed run to Postgres via pkg/store,
// identifying the graph by a content hash of its vertices and edges so
// repeated runs over the same input can be looked up by ListRunsForGraph.
func persistRun(cmd *cobra.Command, g *graph.Graph, dendro community.Dendrogram, pars map[string]float64, objective float64, logger *slog.Logger) error {
	logger.Info("community: connecting to run store")
	s, err := store.NewPostgresRunStore()
	if err != nil {
		return fmt.Errorf("opening run store: %w", err)
	}
	defer s.Close()

	rec := store.RunRecord{
		RunID:          uuid.New(),
		GraphHash:      graphHash(g),
		Model:          detectModel,
		Params:         pars,
		Dendrogram:     dendro,
		ObjectiveValue: objective,
	}
	ctx := context.Background()
	if err := s.PutRun(ctx, rec); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	logger.Info("community: run saved", "run_id", rec.RunID, "graph_hash", rec.GraphHash)
	fmt.Fprintf(cmd.ErrOrStderr(), "run_id\t%s\n", rec.RunID)
	return nil
}

// graphHash fingerprints g's vertex set and edge list (sorted, so map
// iteration order never affects the result) with SHA-256, giving
// pkg/store a stable key to group repeated runs over the same graph.
func graphHash(g *graph.Graph) string {
	h := sha256.New()
	for _, v := range g.SortedVertices() {
		fmt.Fprintf(h, "v:%s\n", v)
	}
	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	for _, e := range edges {
		fmt.Fprintf(h, "e:%s:%s:%g\n", e.U, e.V, e.Weight)
	}
	return hex.EncodeToString(h.Sum(nil))
}
