// Command delaunay reads a 2D point set and prints the undirected edges of
// its Delaunay triangulation.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/meshkit/delaunay/internal/pointio"
	"github.com/meshkit/delaunay/triangulate"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "delaunay [points.csv]",
		Short: "Triangulate a 2D point set",
		Long: "delaunay reads a CSV point set (columns x,y, optionally preceded\n" +
			"by a header row) and writes the undirected edges of its Delaunay\n" +
			"triangulation as CSV (columns ax,ay,bx,by). Input defaults to stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			out, closeOut, err := openOutput(output)
			if err != nil {
				return err
			}
			defer closeOut()

			return triangulateCSV(in, out)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// triangulateCSV reads a point set from in, triangulates it, and writes the
// resulting edge list to out.
func triangulateCSV(in io.Reader, out io.Writer) error {
	pts, err := pointio.ReadPoints(in)
	if err != nil {
		return err
	}
	log.WithField("points", len(pts)).Debug("parsed input")

	segs, err := triangulate.Triangulate(pts)
	if err != nil {
		return err
	}
	log.WithField("edges", len(segs)).Debug("triangulation complete")

	return pointio.WriteSegments(out, segs)
}
