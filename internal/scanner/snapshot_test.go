package scanner

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/ljwgithub/svtags/pkg/keyword"
)

// TestScanFixtureSnapshot golden-tests the full tag stream for a small
// multi-construct fixture, grounded on the teacher's use of go-snaps for
// fixture/golden coverage rather than hand-maintained expected-value
// tables for every construct combination.
func TestScanFixtureSnapshot(t *testing.T) {
	src := `module counter #(parameter WIDTH = 8) (
  input clk,
  input rst,
  output reg [WIDTH-1:0] count
);
  localparam MAX = 255;

  always @(posedge clk) begin : incr
  end
endmodule
`
	got := scanString(t, src, keyword.Verilog)
	snaps.MatchSnapshot(t, got)
}
