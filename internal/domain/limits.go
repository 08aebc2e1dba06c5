package domain

// ClinicLimits holds the highest valid doctor and room indices.
// Indices start at 0, so a clinic with 5 doctors has MaxDoctorIndex = 4
type ClinicLimits struct {
	MaxDoctorIndex int
	MaxRoomIndex   int
}

// Doctors returns all selectable doctor indices, 0..MaxDoctorIndex
func (l ClinicLimits) Doctors() []int {
	return indexRange(l.MaxDoctorIndex)
}

// Rooms returns all selectable room indices, 0..MaxRoomIndex
func (l ClinicLimits) Rooms() []int {
	return indexRange(l.MaxRoomIndex)
}

func indexRange(last int) []int {
	if last < 0 {
		return []int{}
	}
	result := make([]int, 0, last+1)
	for i := 0; i <= last; i++ {
		result = append(result, i)
	}
	return result
}
