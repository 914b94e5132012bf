package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Bergmann89/HighFlowNext/internal/logging"
	"github.com/Bergmann89/HighFlowNext/protocol"
)

// Command flags
var (
	inputHex     string
	outputFormat string
)

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(checksumCmd)
	rootCmd.AddCommand(fieldsCmd)
}

// decodeCmd decodes a captured frame
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a captured protocol frame",
	Long: `Decode a captured High Flow NEXT frame and print its contents.

The frame is read as raw bytes from the given file, or parsed from a hex
string passed via --hex. The frame kind is taken from the first byte;
sensor values, settings and strings frames are supported.`,
	Example: `  # Decode a frame captured to a file
  hfn-dump decode capture.bin

  # Decode a frame from a hex string
  hfn-dump decode --hex "0c0100047075 6d70 1a2b"

  # YAML output for scripting
  hfn-dump decode capture.bin --format yaml

  # Annotated hex dump of a sensor values frame
  hfn-dump decode capture.bin --format raw`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&inputHex, "hex", "", "Frame as a hex string instead of a file")
	decodeCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, yaml, raw)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	raw, err := frameBytes(args)
	if err != nil {
		return err
	}
	logging.LogRawBytes("frame read", raw)

	frame, err := protocol.DecodeFrame(raw)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	logging.LogFrame("decoded", raw[0], raw)

	switch outputFormat {
	case "yaml":
		data, err := yaml.Marshal(reportFor(frame))
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(data))
	case "raw":
		printRaw(frame, raw)
	case "detailed":
		fallthrough
	default:
		printDetailed(frame)
	}

	return nil
}

// checksumCmd computes the CRC-16/USB of a payload
var checksumCmd = &cobra.Command{
	Use:   "checksum <hex>",
	Short: "Compute the CRC-16/USB checksum of a payload",
	Long: `Compute the checksum the device expects for the given payload bytes.

The checksum covers the payload only, not the frame kind byte. With
--frame the input is treated as a complete frame and its trailer is
verified instead.`,
	Example: `  # Checksum of a raw payload
  hfn-dump checksum "01 02 03 04"

  # Verify the trailer of a complete frame
  hfn-dump checksum --frame "0c 00 1a 2b"`,
	Args: cobra.ExactArgs(1),
	RunE: runChecksum,
}

var checksumFrame bool

func init() {
	checksumCmd.Flags().BoolVar(&checksumFrame, "frame", false, "Treat input as a complete frame and verify its trailer")
}

func runChecksum(cmd *cobra.Command, args []string) error {
	data, err := parseHex(args[0])
	if err != nil {
		return err
	}

	if checksumFrame {
		if len(data) < 3 {
			return fmt.Errorf("frame of %d bytes is too short to carry a checksum", len(data))
		}
		payload := data[1 : len(data)-2]
		expected := uint16(data[len(data)-2])<<8 | uint16(data[len(data)-1])
		actual := protocol.Checksum(payload)
		fmt.Printf("Trailer:  0x%04x\n", expected)
		fmt.Printf("Computed: 0x%04x\n", actual)
		if actual != expected {
			return fmt.Errorf("checksum mismatch")
		}
		fmt.Println("✓ Checksum valid")
		return nil
	}

	fmt.Printf("0x%04x\n", protocol.Checksum(data))
	return nil
}

// fieldsCmd prints the sensor values field layout
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Print the field layout of the sensor values frame",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema := protocol.SensorSchema()
		fmt.Printf("Sensor values payload: %d bytes\n\n", schema.PayloadLen())
		fmt.Println("Offset  Width  Name              Scale  Unit   Raw range")
		fmt.Println("------  -----  ----------------  -----  -----  ----------------------")
		for _, f := range schema.Fields() {
			fmt.Printf("%6d  %5d  %-16s  %2d/%-3d %-5s  [%d, %d]\n",
				f.Offset, f.Width, f.Name, f.Scale.Num, f.Scale.Den, f.Unit, f.Min, f.Max)
		}
		return nil
	},
}

// frameBytes reads the frame from the --hex flag or the file argument.
func frameBytes(args []string) ([]byte, error) {
	if inputHex != "" {
		return parseHex(inputHex)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no input: pass a file or use --hex")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}

// parseHex decodes a hex string, ignoring whitespace.
func parseHex(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}
