package subgraph

const tokenFields = `
        token {
          id
          name
          symbol
          __typename
          ... on ERC20Contract {
            decimals
          }
        }`

const queryVetoProposal = `
  query VetoProposal($proposalId: ID!) {
    tokenVotingProposal(id: $proposalId) {
      id
      dao {
        id
        subdomain
      }
      creator
      metadata
      createdAt
      creationBlockNumber
      executionDate
      executionBlockNumber
      executionTxHash
      actions {
        to
        value
        data
      }
      yes
      no
      abstain
      votingMode
      supportThreshold
      startDate
      endDate
      executed
      executable
      voters {
        voter {
          address
        }
        voteReplaced
        voteOption
        votingPower
      }
      plugin {` + tokenFields + `
      }
      totalVotingPower
      minVotingPower
    }
  }
`

const queryVetoProposals = `
  query VetoProposals(
    $where: TokenVotingProposal_filter!
    $limit: Int!
    $skip: Int!
    $direction: OrderDirection!
    $sortBy: TokenVotingProposal_orderBy!
  ) {
    tokenVotingProposals(
      where: $where
      first: $limit
      skip: $skip
      orderDirection: $direction
      orderBy: $sortBy
    ) {
      id
      dao {
        id
        subdomain
      }
      creator
      metadata
      yes
      no
      abstain
      startDate
      endDate
      executed
      executable
      totalVotingPower
      plugin {` + tokenFields + `
      }
    }
  }
`

const queryVetoSettings = `
  query VetoSettings($address: ID!) {
    tokenVotingPlugin(id: $address) {
      minDuration
      minProposerVotingPower
      minParticipation
      supportThreshold
      votingMode
    }
  }
`

const queryVetoPlugin = `
  query VetoPlugin($address: ID!) {
    tokenVotingPlugin(id: $address) {` + tokenFields + `
    }
  }
`

const queryVetoMembers = `
  query VetoMembers($address: ID!) {
    tokenVotingPlugin(id: $address) {
      members {
        address
      }
    }
  }
`

const queryDaos = `
  query Daos(
    $limit: Int!
    $skip: Int!
    $direction: OrderDirection!
    $sortBy: Dao_orderBy!
    $address: String!
  ) {
    daos(
      first: $limit
      skip: $skip
      orderDirection: $direction
      orderBy: $sortBy
      where: {plugins_: {id: $address}}
    ) {
      id
      subdomain
      metadata
      plugins {
        id
        installations {
          appliedVersion {
            build
            pluginRepo {
              subdomain
            }
            release {
              release
            }
          }
        }
      }
    }
  }
`
