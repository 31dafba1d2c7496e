package resolvers

import gqlmodels "crm.GO/graphql/models"

func defaultPageSize(p int32) int {
	if p > 0 {
		return int(p)
	}
	return 20
}

func defaultCurrentPage(p int32) int {
	if p > 0 {
		return int(p)
	}
	return 1
}

func pageInfo(total int64, currentPage, pageSize int) *gqlmodels.PageInfo {
	totalPages := (int(total) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return &gqlmodels.PageInfo{
		PageSize:    int32(pageSize),
		CurrentPage: int32(currentPage),
		TotalPages:  int32(totalPages),
	}
}
