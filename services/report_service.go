package services

import (
	"fmt"
	"sort"

	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/models"
	"github.com/leadflow-simple/utils"
)

const (
	maxExportRows = 10000
	maxMonths     = 12
	topCourses    = 5
)

// ReportLeadStore is the lead access the reporting engine needs
type ReportLeadStore interface {
	FindByOwner(ownerID string, limit int) ([]models.Lead, error)
	CountByOwner(ownerID string) (int64, error)
	FindFiltered(filter dto.LeadFilter, limit int) ([]models.Lead, error)
	Count() (int64, error)
}

// BackupUserStore lists users for the backup dump
type BackupUserStore interface {
	FindAll(limit int) ([]models.User, error)
}

// BackupCourseStore lists courses for the backup dump
type BackupCourseStore interface {
	FindAll(limit int) ([]models.Course, error)
}

// BackupStatusStore lists status definitions for the backup dump
type BackupStatusStore interface {
	FindAll(limit int) ([]models.LeadStatus, error)
}

// ReportService produces aggregations and file exports over leads
type ReportService struct {
	leads    ReportLeadStore
	users    BackupUserStore
	courses  BackupCourseStore
	statuses BackupStatusStore
	audit    AuditRecorder
	orgName  string
}

// NewReportService creates a new report service instance
func NewReportService(leads ReportLeadStore, users BackupUserStore, courses BackupCourseStore, statuses BackupStatusStore, audit AuditRecorder, orgName string) *ReportService {
	return &ReportService{
		leads:    leads,
		users:    users,
		courses:  courses,
		statuses: statuses,
		audit:    audit,
		orgName:  orgName,
	}
}

// OwnStats summarizes a seller's portfolio: total count plus monthly
// creation buckets, most recent month first, capped at a year.
func (s *ReportService) OwnStats(seller models.User) (dto.OwnStatsResponse, error) {
	total, err := s.leads.CountByOwner(seller.ID)
	if err != nil {
		return dto.OwnStatsResponse{}, utils.Wrap(utils.KindInternal, "Failed to compute stats", err)
	}

	leads, err := s.leads.FindByOwner(seller.ID, maxOwnLeads)
	if err != nil {
		return dto.OwnStatsResponse{}, utils.Wrap(utils.KindInternal, "Failed to compute stats", err)
	}

	return dto.OwnStatsResponse{
		Total:   int(total),
		Monthly: monthlyBuckets(leads, false),
	}, nil
}

// Dashboard computes the cross-seller aggregations. All grouping keeps
// the underlying row order, so equal counts keep a stable relative
// ordering.
func (s *ReportService) Dashboard() (dto.DashboardResponse, error) {
	total, err := s.leads.Count()
	if err != nil {
		return dto.DashboardResponse{}, utils.Wrap(utils.KindInternal, "Failed to build dashboard", err)
	}

	leads, err := s.leads.FindFiltered(dto.LeadFilter{}, maxExportRows)
	if err != nil {
		return dto.DashboardResponse{}, utils.Wrap(utils.KindInternal, "Failed to build dashboard", err)
	}

	return dto.DashboardResponse{
		TotalLeads:         total,
		StatusDistribution: statusDistribution(leads),
		CourseDistribution: courseDistribution(leads),
		OwnerRanking:       ownerRanking(leads),
		MonthlyLeads:       monthlyBuckets(leads, true),
	}, nil
}

// Export flattens the filtered leads into a downloadable file.
// An empty result set is a NotFound; an unknown format is an
// InvalidArgument.
func (s *ReportService) Export(format string, filter dto.LeadFilter) (dto.ExportFile, error) {
	leads, err := s.leads.FindFiltered(filter, maxExportRows)
	if err != nil {
		return dto.ExportFile{}, utils.Wrap(utils.KindInternal, "Failed to export leads", err)
	}
	if len(leads) == 0 {
		return dto.ExportFile{}, utils.E(utils.KindNotFound, "No leads found")
	}

	switch format {
	case "csv":
		data, err := buildLeadsCSV(leads)
		if err != nil {
			return dto.ExportFile{}, utils.Wrap(utils.KindInternal, "Failed to export leads", err)
		}
		return dto.ExportFile{Filename: "leads.csv", ContentType: contentTypeCSV, Data: data}, nil
	case "excel":
		data, err := buildLeadsWorkbook(leads)
		if err != nil {
			return dto.ExportFile{}, utils.Wrap(utils.KindInternal, "Failed to export leads", err)
		}
		return dto.ExportFile{Filename: "leads.xlsx", ContentType: contentTypeXLSX, Data: data}, nil
	default:
		return dto.ExportFile{}, utils.E(utils.KindInvalidArgument, "Unsupported export format")
	}
}

// Backup dumps users (without password hashes), leads, courses and
// statuses into one workbook and records the backup in the audit trail.
func (s *ReportService) Backup(actor models.User) (dto.ExportFile, error) {
	users, err := s.users.FindAll(maxExportRows)
	if err != nil {
		return dto.ExportFile{}, utils.Wrap(utils.KindInternal, "Failed to build backup", err)
	}
	for i, u := range users {
		users[i] = u.Sanitized()
	}

	leads, err := s.leads.FindFiltered(dto.LeadFilter{}, maxExportRows)
	if err != nil {
		return dto.ExportFile{}, utils.Wrap(utils.KindInternal, "Failed to build backup", err)
	}
	courses, err := s.courses.FindAll(maxExportRows)
	if err != nil {
		return dto.ExportFile{}, utils.Wrap(utils.KindInternal, "Failed to build backup", err)
	}
	statuses, err := s.statuses.FindAll(maxExportRows)
	if err != nil {
		return dto.ExportFile{}, utils.Wrap(utils.KindInternal, "Failed to build backup", err)
	}

	data, err := buildBackupWorkbook(users, leads, courses, statuses)
	if err != nil {
		return dto.ExportFile{}, utils.Wrap(utils.KindInternal, "Failed to build backup", err)
	}

	s.audit.Record(actor.ID, actor.Name, models.ActionBackup, "system", "full", "Full backup generated")

	return dto.ExportFile{
		Filename:    fmt.Sprintf("backup_%s.xlsx", s.orgName),
		ContentType: contentTypeXLSX,
		Data:        data,
	}, nil
}

// monthlyBuckets groups leads by UTC calendar month ("YYYY-MM"),
// ascending or descending by period, capped at maxMonths
func monthlyBuckets(leads []models.Lead, ascending bool) []dto.MonthlyCount {
	counts := make(map[string]int)
	for _, l := range leads {
		counts[l.CreatedAt.UTC().Format("2006-01")]++
	}

	periods := make([]string, 0, len(counts))
	for p := range counts {
		periods = append(periods, p)
	}
	sort.Strings(periods)
	if !ascending {
		for i, j := 0, len(periods)-1; i < j; i, j = i+1, j-1 {
			periods[i], periods[j] = periods[j], periods[i]
		}
	}
	if len(periods) > maxMonths {
		periods = periods[:maxMonths]
	}

	monthly := make([]dto.MonthlyCount, len(periods))
	for i, p := range periods {
		monthly[i] = dto.MonthlyCount{Period: p, Count: counts[p]}
	}
	return monthly
}

// statusDistribution counts leads per status in first-seen order
func statusDistribution(leads []models.Lead) []dto.StatusCount {
	index := make(map[string]int)
	var dist []dto.StatusCount
	for _, l := range leads {
		i, seen := index[l.Status]
		if !seen {
			index[l.Status] = len(dist)
			dist = append(dist, dto.StatusCount{Status: l.Status})
			i = len(dist) - 1
		}
		dist[i].Count++
	}
	if dist == nil {
		dist = []dto.StatusCount{}
	}
	return dist
}

// courseDistribution counts leads per course and keeps the top entries,
// highest count first
func courseDistribution(leads []models.Lead) []dto.CourseCount {
	index := make(map[string]int)
	var dist []dto.CourseCount
	for _, l := range leads {
		i, seen := index[l.Course]
		if !seen {
			index[l.Course] = len(dist)
			dist = append(dist, dto.CourseCount{Course: l.Course})
			i = len(dist) - 1
		}
		dist[i].Count++
	}

	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Count > dist[j].Count
	})
	if len(dist) > topCourses {
		dist = dist[:topCourses]
	}
	if dist == nil {
		dist = []dto.CourseCount{}
	}
	return dist
}

// ownerRanking groups leads per owner with their enrolled count, sorted
// by total leads descending. The owner name is the denormalized copy
// from the first lead seen.
func ownerRanking(leads []models.Lead) []dto.OwnerRanking {
	index := make(map[string]int)
	var ranking []dto.OwnerRanking
	for _, l := range leads {
		i, seen := index[l.OwnerID]
		if !seen {
			index[l.OwnerID] = len(ranking)
			ranking = append(ranking, dto.OwnerRanking{OwnerID: l.OwnerID, OwnerName: l.OwnerName})
			i = len(ranking) - 1
		}
		ranking[i].TotalLeads++
		if l.Status == models.EnrolledStatus {
			ranking[i].Enrolled++
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalLeads > ranking[j].TotalLeads
	})
	if ranking == nil {
		ranking = []dto.OwnerRanking{}
	}
	return ranking
}
