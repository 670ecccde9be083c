package search

import (
	"reflect"
	"testing"

	"github.com/jimezsa/jobportal/internal/models"
)

func TestFilterLocation(t *testing.T) {
	jobs := []models.Job{
		{Title: "A", Location: "Boston, MA"},
		{Title: "B", Location: "BOSTON"},
		{Title: "C", Location: "New York, NY"},
		{Title: "D"},
	}

	got := titles(Filter(jobs, models.FilterCriteria{Location: "Boston"}))
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter(location) = %v, want %v", got, want)
	}
}

func TestFilterRemoteOnlyUsesStringSentinel(t *testing.T) {
	jobs := []models.Job{
		{Title: "yes", IsRemote: models.NewRemoteFlag("yes")},
		{Title: "bool", IsRemote: models.NewRemoteFlag(true)},
		{Title: "Yes", IsRemote: models.NewRemoteFlag("Yes")},
		{Title: "True", IsRemote: models.NewRemoteFlag("True")},
		{Title: "missing"},
	}

	got := titles(Filter(jobs, models.FilterCriteria{RemoteOnly: true}))
	want := []string{"yes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter(remote) = %v, want %v", got, want)
	}
}

func TestFilterMinSalary(t *testing.T) {
	jobs := []models.Job{
		{Title: "high", Salary: models.NewSalary(60000)},
		{Title: "missing"},
		{Title: "low", Salary: models.NewSalary(40000)},
		{Title: "equal", Salary: models.NewSalary(50000)},
		{Title: "garbage", Salary: models.ParseSalaryString("competitive")},
	}

	got := titles(Filter(jobs, models.FilterCriteria{MinSalary: models.NewSalary(50000)}))
	want := []string{"high", "equal"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter(minSalary) = %v, want %v", got, want)
	}
}

func TestFilterExactMatchFields(t *testing.T) {
	jobs := []models.Job{
		{Title: "A", JobType: "full-time", ExperienceLevel: "Senior"},
		{Title: "B", JobType: "Full-Time", ExperienceLevel: "entry"},
		{Title: "C", JobType: "full-time-ish", ExperienceLevel: "senior"},
		{Title: "D", ExperienceLevel: "senior"},
	}

	t.Run("job type", func(t *testing.T) {
		got := titles(Filter(jobs, models.FilterCriteria{JobType: "FULL-TIME"}))
		want := []string{"A", "B"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Filter(jobType) = %v, want %v", got, want)
		}
	})

	t.Run("experience level", func(t *testing.T) {
		got := titles(Filter(jobs, models.FilterCriteria{ExperienceLevel: "senior"}))
		want := []string{"A", "C", "D"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Filter(experience) = %v, want %v", got, want)
		}
	})

	t.Run("conjunction", func(t *testing.T) {
		got := titles(Filter(jobs, models.FilterCriteria{JobType: "full-time", ExperienceLevel: "senior"}))
		want := []string{"A"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Filter(jobType+experience) = %v, want %v", got, want)
		}
	})
}

func TestFilterEmptyCriteriaKeepsEverything(t *testing.T) {
	jobs := portalFixture()
	got := Filter(jobs, models.FilterCriteria{})
	if !reflect.DeepEqual(titles(got), titles(jobs)) {
		t.Fatalf("Filter(empty) changed the job set")
	}
}

func TestFilterNoMatchIsEmpty(t *testing.T) {
	got := Filter(portalFixture(), models.FilterCriteria{Location: "Atlantis"})
	if got == nil || len(got) != 0 {
		t.Fatalf("Filter(no match) = %#v, want empty non-nil slice", got)
	}
}
