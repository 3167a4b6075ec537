package catalog

import (
	"fmt"
	"sort"
)

// Sample is a named example schedule.
type Sample struct {
	Name       string
	Expression string
	Note       string
}

// Catalog holds the sample schedules the CLI can describe.
type Catalog struct {
	samples map[string]Sample
}

// New creates a Catalog with the predefined samples.
func New() *Catalog {
	c := &Catalog{
		samples: make(map[string]Sample),
	}
	c.registerSamples()
	return c
}

func (c *Catalog) add(name, expr, note string) {
	c.samples[name] = Sample{Name: name, Expression: expr, Note: note}
}

// registerSamples registers predefined schedules
func (c *Catalog) registerSamples() {
	c.add("every_5_minutes", "*/5 * * * *", "every 5 minutes")
	c.add("half_hourly", "*/30 * * * *", "every 30 minutes")

	c.add("bi_hourly", "0 */2 * * *", "every 2 hours")
	c.add("business_bi_hourly", "0 */2 * * 1,2,3,4,5", "every 2 hours on weekdays")

	c.add("daily_backup", "0 0 * * *", "midnight every day")
	c.add("afternoon", "30 14 * * *", "14:30 every day")
	c.add("weekly_report", "0 0 * * 0", "midnight on Sunday")
	c.add("monday_standup", "15 10 * * 1", "10:15 on Monday")
	c.add("weekend", "0 9 * * 6,0", "09:00 on Saturday and Sunday")

	c.add("monthly_cleanup", "0 0 1 * *", "midnight on the 1st of every month")
	c.add("quarterly", "0 0 1 */3 *", "midnight on the 1st of every 3rd month")
	c.add("payday", "0 4 27 * ?", "04:00 on the 27th")
	c.add("monday_the_15th", "0 23 15 * 1", "23:00 on the 15th and on Mondays")

	// Quartz
	c.add("quartz_daily", "0 15 10 * * ?", "10:15 every day, with seconds")
	c.add("quartz_monthly", "0 0 12 1/1 * ? *", "noon on the 1st, with seconds and year")
}

// Lookup returns the sample with the given name.
func (c *Catalog) Lookup(name string) (Sample, error) {
	s, exists := c.samples[name]
	if !exists {
		return Sample{}, fmt.Errorf("no sample schedule named: %s", name)
	}
	return s, nil
}

// Names returns the sample names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.samples))
	for name := range c.samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
