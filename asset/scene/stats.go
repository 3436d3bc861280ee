package scene

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/achilleasa/go-raytrace/types"
)

// Get a printable summary of the scene contents.
func (sc *Scene) Stats() string {
	shapeCounts := map[string]int{}
	var reflective, patterned, transforms int
	for _, s := range sc.Shapes {
		shapeCounts[s.Type]++
		transforms += len(s.Transforms)
		if s.Material == nil {
			continue
		}
		if s.Material.Reflective != nil && *s.Material.Reflective > 0 {
			reflective++
		}
		if s.Material.Pattern != nil {
			patterned++
		}
	}

	width, height, fov := sc.Camera.Width, sc.Camera.Height, sc.Camera.FOV
	if width == 0 {
		width = DefaultFrameW
	}
	if height == 0 {
		height = DefaultFrameH
	}
	if fov == 0 {
		fov = DefaultFOV
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Asset Type", "Asset", "Value"})
	table.Append([]string{"Camera", "Frame", fmt.Sprintf("%dx%d", width, height)})
	table.Append([]string{"", "FOV", fmt.Sprintf("%3.1f deg", fov)})
	table.Append([]string{"", "Eye", fmtVec(sc.Camera.Eye)})
	table.Append([]string{"", "Look at", fmtVec(sc.Camera.LookAt)})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Lights", "---", fmt.Sprintf("%d", len(sc.Lights))})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Shapes", "---", fmt.Sprintf("%d", len(sc.Shapes))})
	table.Append([]string{"", "Spheres", fmt.Sprintf("%d", shapeCounts["sphere"])})
	table.Append([]string{"", "Planes", fmt.Sprintf("%d", shapeCounts["plane"])})
	table.Append([]string{"", "Cylinders", fmt.Sprintf("%d", shapeCounts["cylinder"])})
	table.Append([]string{"", "Transforms", fmt.Sprintf("%d", transforms)})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Materials", "---", fmt.Sprintf("%d", countMaterials(sc.Shapes))})
	table.Append([]string{"", "Reflective", fmt.Sprintf("%d", reflective)})
	table.Append([]string{"", "Patterned", fmt.Sprintf("%d", patterned)})
	table.SetFooter([]string{"Total", " ", fmt.Sprintf("%d", len(sc.Lights)+len(sc.Shapes))})

	table.Render()
	return buf.String()
}

func countMaterials(shapes []Shape) int {
	count := 0
	for _, s := range shapes {
		if s.Material != nil {
			count++
		}
	}
	return count
}

func fmtVec(v types.Vec3) string {
	return fmt.Sprintf("(%3.2f, %3.2f, %3.2f)", v[0], v[1], v[2])
}
