package astro

// JulianDay converts a proleptic Gregorian calendar date plus universal time
// in decimal hours to a Julian Day number. This is the standard civil
// calendar algorithm; it is the shared time base for every provider call, so
// it must be exact.
func JulianDay(year, month, day int, utHours float64) float64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return float64(jdn) - 0.5 + utHours/24
}

// LocalToUT converts local civil time in decimal hours to universal time
// given a timezone offset in minutes, positive east of UTC.
func LocalToUT(localHours float64, tzOffsetMinutes int) float64 {
	return localHours - float64(tzOffsetMinutes)/60
}
