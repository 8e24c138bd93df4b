package report

import "time"

// Bucket is a contiguous date interval of a balance table.
type Bucket struct {
	StartDate time.Time
	EndDate   time.Time
}

// NormalizeBucketStart returns the first date of the bucket containing date.
func NormalizeBucketStart(date time.Time, granularity Granularity) time.Time {
	date = DateOf(date)

	switch granularity {
	case GranularityYear:
		return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case GranularityMonth:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return date
	}
}

// LastDateOfBucket returns the last date of the bucket containing date.
func LastDateOfBucket(date time.Time, granularity Granularity) time.Time {
	date = DateOf(date)

	switch granularity {
	case GranularityYear:
		return time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	case GranularityMonth:
		return time.Date(date.Year(), date.Month(), daysInMonth(date), 0, 0, 0, 0, time.UTC)
	default:
		return date
	}
}

// NextBucketStart advances date by one granularity unit.
func NextBucketStart(date time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityYear:
		return addYears(date, 1)
	case GranularityMonth:
		return addMonths(date, 1)
	default:
		return date.AddDate(0, 0, 1)
	}
}

// previousBucketStart moves date back by one granularity unit.
func previousBucketStart(date time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityYear:
		return addYears(date, -1)
	case GranularityMonth:
		return addMonths(date, -1)
	default:
		return date.AddDate(0, 0, -1)
	}
}

// BuildBuckets partitions [startDate, endDate] into gapless buckets. The first
// bucket starts at the normalized start date and no bucket ends after endDate.
func BuildBuckets(startDate, endDate time.Time, granularity Granularity) []Bucket {
	startDate, endDate = DateOf(startDate), DateOf(endDate)
	if endDate.Before(startDate) {
		return []Bucket{}
	}

	buckets := make([]Bucket, 0)
	cursor := NormalizeBucketStart(startDate, granularity)
	for !cursor.After(endDate) {
		buckets = append(buckets, Bucket{
			StartDate: cursor,
			EndDate:   minDate(LastDateOfBucket(cursor, granularity), endDate),
		})
		cursor = NextBucketStart(cursor, granularity)
	}

	return buckets
}

// BuildBucketStarts returns the start date of every bucket in [startDate, endDate].
// endDate may be a bucket start itself, so it is compared to the normalized start.
func BuildBucketStarts(startDate, endDate time.Time, granularity Granularity) []time.Time {
	endDate = DateOf(endDate)
	cursor := NormalizeBucketStart(startDate, granularity)
	if endDate.IsZero() || endDate.Before(cursor) {
		return []time.Time{}
	}

	starts := make([]time.Time, 0)
	for !cursor.After(endDate) {
		starts = append(starts, cursor)
		cursor = NextBucketStart(cursor, granularity)
	}

	return starts
}

// EffectiveEndDate trims trailing empty buckets from a series axis. With data it
// is the last populated bucket; without data it falls one unit before the
// normalized start, which yields an empty axis.
func EffectiveEndDate(startDate, lastBucketWithRecords time.Time, granularity Granularity) time.Time {
	if lastBucketWithRecords.IsZero() {
		return previousBucketStart(NormalizeBucketStart(startDate, granularity), granularity)
	}
	return lastBucketWithRecords
}
