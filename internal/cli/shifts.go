package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/obscura/internal/cipher"
	"github.com/danieljhkim/obscura/internal/options"
)

var (
	shiftsPattern      string
	shiftsBaseShift    int
	shiftsCustomShifts []int
	shiftsCount        int
)

// shiftsPreview is the JSON view of a shift sequence.
type shiftsPreview struct {
	Pattern   string `json:"pattern"`
	BaseShift int    `json:"baseShift"`
	Shifts    []int  `json:"shifts"`
}

var shiftsCmd = &cobra.Command{
	Use:   "shifts",
	Short: "Preview a shift pattern",
	Long: `Print the shift a pattern produces at each position. Unknown patterns fall
back to the base shift, as they do when encoding.`,
	Example: `  obscura shifts --pattern fibonacci -n 8
  obscura shifts --pattern custom --custom-shifts 1,-2,5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if shiftsCount < 0 {
			return fmt.Errorf("--count must not be negative")
		}

		pattern := cipher.ShiftPattern(shiftsPattern)
		preview := shiftsPreview{
			Pattern:   shiftsPattern,
			BaseShift: shiftsBaseShift,
			Shifts:    make([]int, shiftsCount),
		}
		for i := range preview.Shifts {
			preview.Shifts[i] = cipher.GenerateShift(i, pattern, shiftsBaseShift, shiftsCustomShifts)
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), preview)
		}

		w := cmd.OutOrStdout()
		PrintSection(w, fmt.Sprintf("Shifts: %s (base %d)", shiftsPattern, shiftsBaseShift))
		if !pattern.Known() {
			PrintWarning(w, fmt.Sprintf("Unknown pattern %q, every position uses the base shift", shiftsPattern))
		}
		rows := make([][]string, len(preview.Shifts))
		for i, shift := range preview.Shifts {
			rows[i] = []string{strconv.Itoa(i), strconv.Itoa(shift)}
		}
		PrintTable(w, []string{"Position", "Shift"}, rows)
		return nil
	},
}

func init() {
	shiftsCmd.Flags().StringVar(&shiftsPattern, "pattern", string(options.DefaultPattern), "Shift pattern: even-odd, fibonacci, prime, progressive, custom")
	shiftsCmd.Flags().IntVar(&shiftsBaseShift, "base-shift", cipher.DefaultBaseShift, "Base shift")
	shiftsCmd.Flags().IntSliceVar(&shiftsCustomShifts, "custom-shifts", nil, "Shift cycle for the custom pattern")
	shiftsCmd.Flags().IntVarP(&shiftsCount, "count", "n", 10, "Number of positions to show")
}
