package main

import (
	"fmt"
	"strings"

	"github.com/Bergmann89/HighFlowNext/protocol"
)

// printDetailed writes a human-readable report for the decoded frame.
func printDetailed(frame protocol.Frame) {
	switch f := frame.(type) {
	case *protocol.SensorSnapshot:
		printSensor(f)
	case *protocol.Settings:
		printSettings(f)
	case *protocol.StringsSnapshot:
		printStrings(f)
	default:
		fmt.Printf("%s frame\n", frame.Kind())
	}
}

func printSensor(s *protocol.SensorSnapshot) {
	fmt.Printf("Sensor values (serial %s, firmware %d)\n\n", s.Serial(), s.FirmwareVersion)
	if names := statusNames(s.Status); len(names) > 0 {
		fmt.Printf("  Status:        %s\n", strings.Join(names, ", "))
	}
	fmt.Printf("  Flow:          %.1f l/h\n", s.Flow)
	fmt.Printf("  Water temp:    %.2f °C\n", s.WaterTemp)
	if s.ExternalTemp != nil {
		fmt.Printf("  External temp: %.2f °C\n", *s.ExternalTemp)
	} else {
		fmt.Printf("  External temp: not connected\n")
	}
	fmt.Printf("  Conductivity:  %.1f µS/cm\n", s.Conductivity)
	fmt.Printf("  Water quality: %.2f %%\n", s.WaterQuality)
	fmt.Printf("  Power:         %.2f W\n", s.Power)
	fmt.Printf("  Voltage 5V:    %.2f V\n", s.Voltage5V)
	fmt.Printf("  Voltage USB:   %.2f V\n", s.VoltageUSB)
	fmt.Printf("  Frequency:     %.1f Hz\n", s.Frequency)
	fmt.Printf("  Volume:        %.1f l\n", s.Volume)
	if names := alarmStateNames(s.Alarms); len(names) > 0 {
		fmt.Printf("  Alarms:        %s\n", strings.Join(names, ", "))
	} else {
		fmt.Printf("  Alarms:        none\n")
	}
}

func printSettings(s *protocol.Settings) {
	fmt.Printf("Settings (version %d)\n", s.Version)

	fmt.Println("\nSystem:")
	if names := standbyNames(s.System.StandbyFlags); len(names) > 0 {
		fmt.Printf("  Standby:          %s\n", strings.Join(names, ", "))
	}
	fmt.Printf("  AquaBus address:  %d\n", s.System.AquaBusAddress)
	if s.System.IncreasedCurrentDraw != nil {
		fmt.Printf("  Current draw:     %d mA\n", s.System.IncreasedCurrentDraw.Milliamps())
	}

	fmt.Println("\nSensor:")
	fmt.Printf("  Medium:           %s\n", s.Sensor.Medium)
	fmt.Printf("  Connector:        %s\n", s.Sensor.ConnectorType)
	fmt.Printf("  Water offset:     %.2f °C\n", s.Sensor.WaterTempOffset.Celsius())
	fmt.Printf("  External offset:  %.2f °C\n", s.Sensor.ExternalTempOffset.Celsius())
	fmt.Printf("  Cond. offset:     %.1f µS/cm\n", s.Sensor.ConductivityOffset.MicroSiemens())
	fmt.Printf("  Quality 100 %%:    %.0f µS/cm\n", s.Sensor.WaterQualityMax.MicroSiemens())
	fmt.Printf("  Quality 0 %%:      %.0f µS/cm\n", s.Sensor.WaterQualityMin.MicroSiemens())
	fmt.Printf("  Power damping:    %.1f W\n", s.Sensor.PowerDamping.Watts())
	fmt.Println("  Flow correction:")
	for _, p := range s.Sensor.FlowCorrection {
		fmt.Printf("    %7.1f l/h  %+.2f %%\n", p.Flow.LitersPerHour(), p.Correction.Percent())
	}

	fmt.Println("\nAlarms:")
	if names := alarmFlagNames(s.Alarms.Flags); len(names) > 0 {
		fmt.Printf("  Indicators:       %s\n", strings.Join(names, ", "))
	}
	fmt.Printf("  Startup delay:    %d s\n", s.Alarms.StartupDelay)
	if s.Alarms.FlowAlarmLimit != nil {
		fmt.Printf("  Flow limit:       %.1f l/h\n", s.Alarms.FlowAlarmLimit.LitersPerHour())
	}
	if s.Alarms.WaterTemperatureLimit != nil {
		fmt.Printf("  Water temp limit: %.2f °C\n", s.Alarms.WaterTemperatureLimit.Celsius())
	}
	if s.Alarms.ExternalTempLimit != nil {
		fmt.Printf("  Ext. temp limit:  %.2f °C\n", s.Alarms.ExternalTempLimit.Celsius())
	}
	if s.Alarms.WaterQualityLimit != nil {
		fmt.Printf("  Quality limit:    %.2f %%\n", s.Alarms.WaterQualityLimit.Percent())
	}
	fmt.Printf("  Output signal:    %s\n", s.Alarms.OutputSignal)

	fmt.Println("\nDisplay:")
	fmt.Printf("  Units:            %s, %s\n", s.Display.TemperatureUnit, s.Display.FlowUnit)
	if names := displayFlagNames(s.Display.DisplayFlags); len(names) > 0 {
		fmt.Printf("  Flags:            %s\n", strings.Join(names, ", "))
	}
	if s.Display.NextPageInterval != nil {
		fmt.Printf("  Page interval:    %d s\n", *s.Display.NextPageInterval)
	}
	if names := pageNames(s.Display.PageFlags); len(names) > 0 {
		fmt.Printf("  Pages:            %s\n", strings.Join(names, ", "))
	}
	fmt.Printf("  Brightness:       %s\n", s.Display.Brightness)
	if s.Display.IdleBrightness != nil {
		fmt.Printf("  Idle brightness:  %s\n", *s.Display.IdleBrightness)
	} else {
		fmt.Printf("  Idle brightness:  off\n")
	}
	for i, c := range s.Display.Charts {
		fmt.Printf("  Chart %d:          %s, %.1f s\n", i+1, c.Source, c.Interval.Seconds())
	}

	if s.Lighting == nil {
		fmt.Println("\nLighting: disabled")
		return
	}
	fmt.Printf("\nLighting (brightness %d):\n", s.Lighting.Brightness)
	printControllers("strip", s.Lighting.StripControllers)
	printControllers("sensor", s.Lighting.SensorControllers)
}

func printControllers(group string, controllers []protocol.Controller) {
	for i, c := range controllers {
		fmt.Printf("  %s %d: LEDs %d-%d, %s", group, i+1, c.Offset, c.Offset+c.Length-1, effectName(c.Effect))
		if c.DataSource != nil {
			fmt.Printf(", source %s", *c.DataSource)
		}
		fmt.Println()
	}
}

func printStrings(s *protocol.StringsSnapshot) {
	fmt.Printf("Device name: %q\n", s.DeviceName)
	for i, name := range s.SensorNames {
		fmt.Printf("Sensor %d:    %q\n", i+1, name)
	}
}

// printRaw writes an annotated dump. Sensor frames are broken down per
// schema field; other kinds get a plain hex dump.
func printRaw(frame protocol.Frame, raw []byte) {
	payload := raw[1 : len(raw)-2]

	if frame.Kind() == protocol.KindSensorValues {
		schema := protocol.SensorSchema()
		fmt.Println("Offset  Bytes        Raw       Physical      Name")
		fmt.Println("------  -----------  --------  ------------  ----------------")
		for _, f := range schema.Fields() {
			b := payload[f.Offset : f.Offset+f.Width]
			rawVal := f.Raw(payload)
			phys := f.Scale.Float(rawVal)
			fmt.Printf("%6d  %-11x  %8d  %9.2f %-3s %s\n",
				f.Offset, b, rawVal, phys, f.Unit, f.Name)
		}
		return
	}

	fmt.Printf("%s frame, %d byte payload:\n", frame.Kind(), len(payload))
	for i := 0; i < len(payload); i += 16 {
		end := i + 16
		if end > len(payload) {
			end = len(payload)
		}
		fmt.Printf("%04x  % x\n", i, payload[i:end])
	}
}
