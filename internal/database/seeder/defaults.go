package seeder

// Defaults seeds a small demo dataset. Order matters: swipes reference both
// users and jobs.
func Defaults() []Seeder {
	return []Seeder{
		UsersSeeder{},
		JobsSeeder{},
		SwipesSeeder{},
	}
}
